package logging

import (
	"sync"
	"sync/atomic"
)

// Indenter tracks the nesting depth used to indent log output. The depth
// is shared by every goroutine holding the same Indenter: it counts the
// scopes currently open across the whole process, not per goroutine.
// The zero value is ready to use.
type Indenter struct {
	depth atomic.Int64
}

// DefaultIndenter is the process-wide indenter used when a formatter or
// logger is not handed one explicitly.
var DefaultIndenter = &Indenter{}

// Depth returns the current nesting depth. Never negative.
func (i *Indenter) Depth() int {
	d := i.depth.Load()
	if d < 0 {
		return 0
	}
	return int(d)
}

// Indent opens a scope, raising the depth by one until End is called on
// the returned scope. Intended for use with defer:
//
//	defer ind.Indent().End()
func (i *Indenter) Indent() *Scope {
	i.depth.Add(1)
	return &Scope{indenter: i}
}

// Scope is an open indentation scope.
type Scope struct {
	indenter *Indenter
	once     sync.Once
}

// End closes the scope, lowering the depth by exactly one. Calling End
// again has no further effect, so it is safe on every exit path.
func (s *Scope) End() {
	s.once.Do(func() {
		s.indenter.depth.Add(-1)
	})
}

// Indent opens a scope on the default indenter.
func Indent() *Scope {
	return DefaultIndenter.Indent()
}

// Indentation returns the current depth of the default indenter.
func Indentation() int {
	return DefaultIndenter.Depth()
}
