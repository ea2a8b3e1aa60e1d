package validator

// Logger receives debug events from the FormValidator. It is satisfied by
// *github.com/charmbracelet/log.Logger.
type Logger interface {
	Debug(msg any, keyvals ...any)
}

// Option configures a FormValidator.
type Option func(*FormValidator)

// WithLogger routes materialization events to logger.
func WithLogger(logger Logger) Option {
	return func(v *FormValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

type nopLogger struct{}

func (nopLogger) Debug(any, ...any) {}
