package core

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns the runtime identifier of the calling goroutine.
//
// A device context is current on a single OS thread, and the goroutine
// that owns it is expected to stay locked to that thread. Comparing
// goroutine identifiers is how the frontend detects operations issued
// from the wrong place before they reach the device.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// First line reads "goroutine <id> [<state>]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
