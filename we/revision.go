package we

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type Revision string

const InitialRevision = Revision("00000000000000000000000000")

func (revision Revision) String() string {
	return string(revision)
}

// Timestamp reports when the revision was generated. InitialRevision maps to the unix epoch.
func (revision Revision) Timestamp() Timestamp {
	v := ulid.MustParse(string(revision))
	return TimestampFromTime(ulid.Time(v.Time()))
}

type RevisionGenerator struct {
	lk      sync.Mutex
	entropy *ulid.MonotonicEntropy
	last    uint64
}

func NewRevisionGenerator() *RevisionGenerator {
	t := time.Now()

	return &RevisionGenerator{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0),
	}
}

// NewRevision returns a revision strictly greater than every earlier one from this
// generator. A t earlier than the last issued revision is treated as that revision's
// millisecond, so a clock stepping back never reorders revisions.
func (g *RevisionGenerator) NewRevision(t time.Time) Revision {
	g.lk.Lock()
	defer g.lk.Unlock()

	ms := ulid.Timestamp(t)
	if ms < g.last {
		ms = g.last
	}
	g.last = ms

	return Revision(ulid.MustNew(ms, g.entropy).String())
}
