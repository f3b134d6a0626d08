package idgen

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator issues record identity and creation timestamps. Timestamps
// are forced monotonically non-decreasing within the process so that
// same-instant compensating entries keep a stable replay order.
type Generator struct {
	mu   sync.Mutex
	last time.Time
}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) NewID() string {
	return uuid.NewString()
}

func (g *Generator) Now() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UTC()
	if !now.After(g.last) {
		now = g.last.Add(time.Microsecond)
	}
	g.last = now
	return now
}
