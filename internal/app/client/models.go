package client

import (
	"context"
	gosync "sync"

	"vedamatch/internal/domain/library"
)

// MemoryStorage - временное in-memory хранилище. Используется как
// запасной вариант, когда SQLite недоступен, и в тестах.
type MemoryStorage struct {
	mu    gosync.Mutex
	infos map[string]*library.SavedBookInfo
	data  map[string]*library.OfflineBookData
	kv    map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		infos: make(map[string]*library.SavedBookInfo),
		data:  make(map[string]*library.OfflineBookData),
		kv:    make(map[string]string),
	}
}

func (m *MemoryStorage) SaveBook(_ context.Context, info *library.SavedBookInfo, data *library.OfflineBookData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	infoCopy := *info
	dataCopy := *data
	m.infos[info.Code] = &infoCopy
	m.data[info.Code] = &dataCopy
	return nil
}

func (m *MemoryStorage) DeleteBook(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.infos, code)
	delete(m.data, code)
	return nil
}

func (m *MemoryStorage) GetSavedBook(_ context.Context, code string) (*library.SavedBookInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.infos[code]
	if !ok {
		return nil, nil
	}
	infoCopy := *info
	return &infoCopy, nil
}

func (m *MemoryStorage) ListSavedBooks(_ context.Context) ([]library.SavedBookInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]library.SavedBookInfo, 0, len(m.infos))
	for _, info := range m.infos {
		books = append(books, *info)
	}
	return books, nil
}

func (m *MemoryStorage) GetBookData(_ context.Context, code string) (*library.OfflineBookData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[code]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (m *MemoryStorage) CountSavedBooks(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.infos), nil
}

func (m *MemoryStorage) GetValue(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.kv[key], nil
}

func (m *MemoryStorage) SetValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *MemoryStorage) DeleteValue(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.kv, key)
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}
