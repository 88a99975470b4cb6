package types

// ContextKey - тип ключей контекста команд.
type ContextKey string

// ClientAppKey - ключ, под которым в контексте команды лежит *client.App.
const ClientAppKey ContextKey = "app"
