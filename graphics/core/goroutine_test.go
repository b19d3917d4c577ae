package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoroutineID(t *testing.T) {
	id := GoroutineID()
	require.NotZero(t, id)

	// Stable within a goroutine.
	assert.Equal(t, id, GoroutineID())

	// Different across goroutines.
	other := make(chan uint64)
	go func() { other <- GoroutineID() }()
	assert.NotEqual(t, id, <-other)
}
