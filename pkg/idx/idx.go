// Package idx generates the ULID identifiers used for every row in the
// RSVP store. ULIDs sort by creation time, so listings ordered by id come
// out in creation order.
package idx

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0) // not safe for concurrent use
)

// NewString returns a new ULID stamped with the current time.
func NewString() string {
	return newAt(time.Now().UTC())
}

func newAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Valid reports whether s is a well formed ULID. Handlers use it to turn
// garbage path parameters into a 404 before touching the store.
func Valid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
