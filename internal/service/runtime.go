package service

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// SystemRandom draws from the global math/rand/v2 source.
type SystemRandom struct{}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (SystemRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// Token returns eight lowercase hex characters.
func (SystemRandom) Token() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
