package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"vedamatch/internal/domain/library"
)

// schemaVersion фиксируется в user_version при первом открытии.
// Миграций нет: изменение схемы потребует явной стратегии.
const schemaVersion = 1

// SQLiteStorage - локальное структурированное хранилище клиента.
// Две коллекции книг (saved_books, book_data) с ключом code и kv-таблица
// для одиночных долговременных записей (журнал уведомлений).
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS saved_books (
			code TEXT PRIMARY KEY,
			info TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS book_data (
			code TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return err
	}

	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	if version == 0 {
		_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	}
	return err
}

// SaveBook записывает метаданные и содержимое книги в одной транзакции.
// Инвариант хранилища: запись в saved_books существует только вместе
// с записью в book_data для того же code.
func (s *SQLiteStorage) SaveBook(ctx context.Context, info *library.SavedBookInfo, data *library.OfflineBookData) error {
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("ошибка сериализации метаданных книги: %w", err)
	}

	dataJSON, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("ошибка сериализации содержимого книги: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO saved_books (code, info) VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET info = excluded.info
	`, info.Code, string(infoJSON)); err != nil {
		return fmt.Errorf("ошибка сохранения метаданных книги: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO book_data (code, data) VALUES (?, ?)
		ON CONFLICT(code) DO UPDATE SET data = excluded.data
	`, info.Code, string(dataJSON)); err != nil {
		return fmt.Errorf("ошибка сохранения содержимого книги: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

// DeleteBook удаляет обе записи книги в одной транзакции.
// Удаление отсутствующей книги не является ошибкой.
func (s *SQLiteStorage) DeleteBook(ctx context.Context, code string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка открытия транзакции: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM saved_books WHERE code = ?", code); err != nil {
		return fmt.Errorf("ошибка удаления метаданных книги: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM book_data WHERE code = ?", code); err != nil {
		return fmt.Errorf("ошибка удаления содержимого книги: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}

	return nil
}

// GetSavedBook возвращает метаданные книги или nil, если книга не сохранена.
func (s *SQLiteStorage) GetSavedBook(ctx context.Context, code string) (*library.SavedBookInfo, error) {
	var infoJSON string
	err := s.db.QueryRowContext(ctx, "SELECT info FROM saved_books WHERE code = ?", code).Scan(&infoJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения метаданных книги: %w", err)
	}

	var info library.SavedBookInfo
	if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
		return nil, fmt.Errorf("ошибка парсинга метаданных книги: %w", err)
	}

	return &info, nil
}

// ListSavedBooks возвращает метаданные всех сохраненных книг,
// не трогая содержимое book_data.
func (s *SQLiteStorage) ListSavedBooks(ctx context.Context) ([]library.SavedBookInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT info FROM saved_books ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer rows.Close()

	var books []library.SavedBookInfo
	for rows.Next() {
		var infoJSON string
		if err := rows.Scan(&infoJSON); err != nil {
			return nil, fmt.Errorf("ошибка сканирования записи: %w", err)
		}

		var info library.SavedBookInfo
		if err := json.Unmarshal([]byte(infoJSON), &info); err != nil {
			return nil, fmt.Errorf("ошибка парсинга метаданных книги: %w", err)
		}

		books = append(books, info)
	}

	return books, rows.Err()
}

// GetBookData возвращает содержимое книги или nil, если книга не сохранена.
func (s *SQLiteStorage) GetBookData(ctx context.Context, code string) (*library.OfflineBookData, error) {
	var dataJSON string
	err := s.db.QueryRowContext(ctx, "SELECT data FROM book_data WHERE code = ?", code).Scan(&dataJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения содержимого книги: %w", err)
	}

	var data library.OfflineBookData
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return nil, fmt.Errorf("ошибка парсинга содержимого книги: %w", err)
	}

	return &data, nil
}

// CountSavedBooks возвращает количество сохраненных книг.
func (s *SQLiteStorage) CountSavedBooks(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM saved_books").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчета книг: %w", err)
	}

	return count, nil
}

// GetValue возвращает значение по ключу; пустая строка - ключ отсутствует.
func (s *SQLiteStorage) GetValue(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}

	return value, nil
}

// SetValue записывает значение по ключу, перезаписывая существующее.
func (s *SQLiteStorage) SetValue(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("ошибка записи ключа %s: %w", key, err)
	}

	return nil
}

// DeleteValue удаляет ключ целиком; отсутствующий ключ - не ошибка.
func (s *SQLiteStorage) DeleteValue(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("ошибка удаления ключа %s: %w", key, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
