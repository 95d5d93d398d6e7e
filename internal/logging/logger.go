package logging

// Logger fans records out to its handlers. Records below the minimum
// level are dropped before any handler sees them. Every logging method
// returns an error, but the only error that ever surfaces is a broken
// stdout pipe; callers that log to stdout should check it and stop.
type Logger struct {
	minLevel Level
	indenter *Indenter
	handlers []*StreamHandler
}

// New returns a logger emitting records at or above minLevel through the
// given handlers, indenting through the default indenter.
func New(minLevel Level, handlers ...*StreamHandler) *Logger {
	return &Logger{
		minLevel: minLevel,
		indenter: DefaultIndenter,
		handlers: handlers,
	}
}

// MinLevel returns the minimum severity the logger emits.
func (l *Logger) MinLevel() Level {
	return l.minLevel
}

// Indent opens an indentation scope covering all of the logger's output.
// Close it with End, normally deferred:
//
//	defer log.Indent().End()
func (l *Logger) Indent() *Scope {
	return l.indenter.Indent()
}

// Emit sends a fully constructed record through the handlers. Handlers
// whose filter rejects the record are skipped. The first fatal delivery
// failure stops the fan-out.
func (l *Logger) Emit(r *Record) error {
	if r.Level < l.minLevel {
		return nil
	}
	for _, h := range l.handlers {
		if !h.Accepts(r) {
			continue
		}
		if err := h.Emit(r); err != nil {
			return err
		}
	}
	return nil
}

// Logf logs a printf-style message at the given level.
func (l *Logger) Logf(level Level, format string, args ...any) error {
	if level < l.minLevel {
		return nil
	}
	return l.Emit(NewRecord(level, format, args...))
}

// Debugf logs at Debug.
func (l *Logger) Debugf(format string, args ...any) error {
	return l.Logf(LevelDebug, format, args...)
}

// Infof logs at Info.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Logf(LevelInfo, format, args...)
}

// Warnf logs at Warning.
func (l *Logger) Warnf(format string, args ...any) error {
	return l.Logf(LevelWarning, format, args...)
}

// Errorf logs at Error.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Logf(LevelError, format, args...)
}

// Criticalf logs at Critical.
func (l *Logger) Criticalf(format string, args ...any) error {
	return l.Logf(LevelCritical, format, args...)
}

// Deprecatedf logs a deprecation notice at Warning. The message carries
// the deprecation marker in place of the usual severity prefix.
func (l *Logger) Deprecatedf(format string, args ...any) error {
	return l.Logf(LevelWarning, DeprecationPrefix+format, args...)
}
