package logging

import (
	"strings"

	"github.com/valyala/fasttemplate"
)

// TimestampLayout renders a record's creation time, always in UTC, with
// millisecond precision and a comma as the fractional separator.
const TimestampLayout = "2006-01-02T15:04:05,000"

// DeprecationPrefix marks messages announcing deprecated behavior. The
// formatter treats such messages as already labeled and adds no severity
// prefix of its own, at any level.
const DeprecationPrefix = "DEPRECATION: "

// DefaultIndentWidth is the number of spaces rendered per indentation
// level.
const DefaultIndentWidth = 2

const defaultLineTemplate = "{{message}}"

// Formatter renders records as indented, severity-prefixed text. All
// configuration is captured at construction; a Formatter is immutable
// and safe for concurrent use. Its output depends only on the record,
// the configuration, and the indenter depth at the time of the call.
type Formatter struct {
	indenter    *Indenter
	template    *fasttemplate.Template
	timestamps  bool
	indentWidth int
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithTimestamps enables a UTC timestamp on every output line.
func WithTimestamps(on bool) FormatterOption {
	return func(f *Formatter) {
		f.timestamps = on
	}
}

// WithIndentWidth sets the spaces rendered per indentation level.
// Non-positive widths are ignored, keeping DefaultIndentWidth.
func WithIndentWidth(width int) FormatterOption {
	return func(f *Formatter) {
		if width > 0 {
			f.indentWidth = width
		}
	}
}

// WithIndenter sets the indenter consulted for the current depth.
func WithIndenter(i *Indenter) FormatterOption {
	return func(f *Formatter) {
		if i != nil {
			f.indenter = i
		}
	}
}

// WithLineTemplate sets the template expanded around the prefixed
// message. Placeholders are written {{message}} and {{level}}. Panics
// if the template is malformed.
func WithLineTemplate(template string) FormatterOption {
	return func(f *Formatter) {
		f.template = fasttemplate.New(template, "{{", "}}")
	}
}

// NewFormatter returns a formatter with the given options applied over
// the defaults: no timestamps, DefaultIndentWidth, DefaultIndenter, and
// a bare {{message}} template.
func NewFormatter(opts ...FormatterOption) *Formatter {
	f := &Formatter{
		indenter:    DefaultIndenter,
		template:    fasttemplate.New(defaultLineTemplate, "{{", "}}"),
		indentWidth: DefaultIndentWidth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// messageStart returns the severity prefix for an already rendered
// message. Deprecation messages carry their own label and get none.
// Critical deliberately renders as "ERROR: ".
func messageStart(level Level, msg string) string {
	if level < LevelWarning {
		return ""
	}
	if strings.HasPrefix(msg, DeprecationPrefix) {
		return ""
	}
	if level < LevelError {
		return "WARNING: "
	}
	return "ERROR: "
}

// Format renders the record. Every line of a multi-line message receives
// the same prefix: the timestamp when enabled, then the current
// indentation.
func (f *Formatter) Format(r *Record) string {
	msg := r.Message()
	if r.Err != nil {
		msg += "\n" + r.Err.Error()
	}
	msg = messageStart(r.Level, msg) + msg

	formatted := f.template.ExecuteString(map[string]interface{}{
		"message": msg,
		"level":   r.Level.String(),
	})

	prefix := ""
	if f.timestamps {
		prefix = r.Time.UTC().Format(TimestampLayout) + " "
	}
	if depth := f.indenter.Depth(); depth > 0 {
		prefix += strings.Repeat(" ", depth*f.indentWidth)
	}
	if prefix == "" {
		return formatted
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(formatted, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}
