package logging

import (
	"fmt"
	"time"
)

// Record is a single log event. A record is created once per logging
// call and treated as read-only afterwards: formatters and handlers
// never modify it, so the same record may safely be rendered from
// several goroutines at once.
type Record struct {
	// Level is the severity the record was logged at.
	Level Level

	// Time is when the record was created.
	Time time.Time

	// Msg is the raw message, interpreted as a printf format string
	// when Args is non-empty.
	Msg string

	// Args are the substitution arguments for Msg. When empty, Msg is
	// used verbatim and any verbs in it are left untouched.
	Args []any

	// Err is an optional error associated with the record, rendered on
	// its own line below the message.
	Err error
}

// NewRecord returns a record stamped with the current time.
func NewRecord(level Level, msg string, args ...any) *Record {
	return &Record{
		Level: level,
		Time:  time.Now(),
		Msg:   msg,
		Args:  args,
	}
}

// Message renders the record's message, applying printf substitution
// only when arguments are present.
func (r *Record) Message() string {
	if len(r.Args) == 0 {
		return r.Msg
	}
	return fmt.Sprintf(r.Msg, r.Args...)
}
