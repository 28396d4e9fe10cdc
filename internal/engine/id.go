package engine

import (
	"crypto/rand"
	"fmt"
	"time"
)

// generateID creates a short random hex reference for tracing one
// submission through the logs.
func generateID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("sub-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
