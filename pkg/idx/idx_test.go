package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewStringIsValid(t *testing.T) {
	id := NewString()
	require.Len(t, id, 26)
	require.True(t, Valid(id))
	require.NotEqual(t, id, NewString())
}

func TestValidRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "launch-party-2025", "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3Z"} {
		require.False(t, Valid(in), "input %q", in)
	}
}

func TestMonotonicWithinSameMillisecond(t *testing.T) {
	at := time.Unix(1700000000, 0).UTC()
	prev := newAt(at)
	for range 100 {
		next := newAt(at)
		require.Greater(t, next, prev)
		prev = next
	}
}
