package dashboard

import (
	"strconv"
	"sync/atomic"
	"time"
)

// idGenerator hands out monotonically increasing identifiers seeded from the
// wall clock. Good enough for in-session uniqueness (activities are not
// persisted in the current product stage), nothing more.
type idGenerator struct {
	n atomic.Int64
}

func newIDGenerator() *idGenerator {
	g := &idGenerator{}
	g.n.Store(time.Now().UnixMilli())
	return g
}

func (g *idGenerator) Next() string {
	return strconv.FormatInt(g.n.Add(1), 10)
}
