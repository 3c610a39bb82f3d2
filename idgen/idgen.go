// Package idgen assigns record ids. Ids are sequential decimal strings,
// unique for the lifetime of the process; uniqueness is the only
// contract callers may rely on.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// Generator hands out process-unique record ids.
type Generator struct {
	last atomic.Uint64
}

func New() *Generator {
	return &Generator{}
}

// Next returns a fresh id, safe for concurrent use.
func (g *Generator) Next() string {
	return strconv.FormatUint(g.last.Add(1), 10)
}
