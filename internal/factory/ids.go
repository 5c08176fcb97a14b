package factory

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/inamate/inamate/canvas-go/internal/typeid"
)

// IDGenerator supplies fresh node identifiers. Implementations must be safe
// for concurrent use when a Factory is shared between goroutines.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string { return f() }

// TypeIDGenerator issues prefixed, time-sortable ids such as node_01h455vb4pex5vsknk084sn02q.
type TypeIDGenerator struct {
	Prefix string
}

func (g TypeIDGenerator) NewID() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = typeid.PrefixNode
	}
	return typeid.New(prefix)
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues Prefix1, Prefix2, ... in call order.
type SequenceGenerator struct {
	Prefix string
	n      atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.Prefix, g.n.Add(1))
}
