package ports

// Logger is the logging abstraction used across the application.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
