package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nestlog/nestlog/internal/terminal"
)

// Channel identifies which console stream a handler serves. The channel
// also decides the broken-pipe policy: Stdout is the primary channel
// whose breakage is fatal to the caller, Stderr is the secondary channel
// whose breakage is tolerated.
type Channel int

const (
	Stdout Channel = iota
	Stderr
)

func (c Channel) file() *os.File {
	if c == Stdout {
		return os.Stdout
	}
	return os.Stderr
}

// DiagnosticSink receives faults the logging machinery could not deliver
// as regular output. Implementations must not log back through the
// machinery that just failed.
type DiagnosticSink interface {
	HandleError(r *Record, err error)
}

// NewWriterSink returns a DiagnosticSink printing a last-resort block to
// w for every fault:
//
//	--- Logging error ---
//	<error>
//	Message: '<raw message>'
func NewWriterSink(w io.Writer) DiagnosticSink {
	return &writerSink{w: w}
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *writerSink) HandleError(r *Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, "--- Logging error ---")
	fmt.Fprintln(s.w, err)
	fmt.Fprintf(s.w, "Message: '%s'\n", r.Msg)
}

// flusher is implemented by buffered destinations that must be flushed
// after every record.
type flusher interface {
	Flush() error
}

// StreamHandler writes formatted records to a console stream, colorized
// according to its mode. Writes and flushes are serialized by an
// internal mutex so records from concurrent goroutines never interleave.
type StreamHandler struct {
	channel   Channel
	formatter *Formatter
	mode      ColorMode
	sink      DiagnosticSink
	filter    func(*Record) bool
	colors    []levelColor

	mu  sync.Mutex
	out io.Writer
}

// HandlerOption configures a StreamHandler.
type HandlerOption func(*StreamHandler)

// WithWriter redirects the handler to w instead of the channel's own
// stream. The channel keeps deciding the broken-pipe policy. The writer
// is used as-is, without the platform color translation applied to the
// default streams.
func WithWriter(w io.Writer) HandlerOption {
	return func(h *StreamHandler) {
		h.out = w
	}
}

// WithFormatter sets the formatter used to render records.
func WithFormatter(f *Formatter) HandlerOption {
	return func(h *StreamHandler) {
		if f != nil {
			h.formatter = f
		}
	}
}

// WithColorMode sets when output is colorized.
func WithColorMode(m ColorMode) HandlerOption {
	return func(h *StreamHandler) {
		h.mode = m
	}
}

// WithDiagnosticSink sets the sink receiving delivery faults.
func WithDiagnosticSink(s DiagnosticSink) HandlerOption {
	return func(h *StreamHandler) {
		if s != nil {
			h.sink = s
		}
	}
}

// WithFilter restricts the handler to records the predicate accepts.
func WithFilter(accept func(*Record) bool) HandlerOption {
	return func(h *StreamHandler) {
		h.filter = accept
	}
}

// BelowLevel returns a handler filter admitting records strictly below
// max. Setup uses it to keep routine output off the error stream.
func BelowLevel(max Level) func(*Record) bool {
	return func(r *Record) bool {
		return r.Level < max
	}
}

// AtOrAbove returns a handler filter admitting records at or above min.
func AtOrAbove(min Level) func(*Record) bool {
	return func(r *Record) bool {
		return r.Level >= min
	}
}

// NewStreamHandler returns a handler bound to the given channel. Without
// options it writes to the channel's os stream through the platform
// color writer, renders with a default formatter, decides color
// automatically, and reports faults to a last-resort sink on os.Stderr.
// Whether output is colorized is resolved once, here.
func NewStreamHandler(ch Channel, opts ...HandlerOption) *StreamHandler {
	h := &StreamHandler{
		channel:   ch,
		formatter: NewFormatter(),
		mode:      ColorAuto,
		sink:      NewWriterSink(os.Stderr),
	}
	for _, opt := range opts {
		opt(h)
	}

	dest := h.out
	if dest == nil {
		f := ch.file()
		dest = f
		h.out = terminal.ColorWriter(f)
	}
	if h.shouldColor(dest) {
		h.colors = newLevelColors()
	}
	return h
}

// shouldColor resolves the color mode against the unwrapped destination.
func (h *StreamHandler) shouldColor(dest io.Writer) bool {
	switch h.mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if terminal.IsTerminal(dest) {
		return true
	}
	// Some CI consoles render ANSI without being a tty.
	return os.Getenv("TERM") == "ANSI"
}

// Accepts reports whether the handler's filter admits the record.
func (h *StreamHandler) Accepts(r *Record) bool {
	return h.filter == nil || h.filter(r)
}

// Emit formats and writes one record followed by a newline, flushing
// buffered destinations. A broken pipe on the Stdout channel is returned
// as an error wrapping ErrBrokenStdout; every other delivery fault is
// reported to the diagnostic sink and swallowed. Nothing is retried.
func (h *StreamHandler) Emit(r *Record) error {
	msg := h.paint(h.formatter.Format(r), r.Level)

	h.mu.Lock()
	_, err := io.WriteString(h.out, msg+"\n")
	if err == nil {
		if fl, ok := h.out.(flusher); ok {
			err = fl.Flush()
		}
	}
	h.mu.Unlock()

	if err == nil {
		return nil
	}
	if isBrokenPipe(err) && h.channel == Stdout {
		return fmt.Errorf("%w: %w", ErrBrokenStdout, err)
	}
	h.sink.HandleError(r, err)
	return nil
}

func (h *StreamHandler) paint(msg string, level Level) string {
	for _, lc := range h.colors {
		if level >= lc.threshold {
			return lc.paint.Sprint(msg)
		}
	}
	return msg
}
