package counted

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/lotsa"
)

// A Seq is never mutated in place, so a single instance must be readable
// from many goroutines without synchronization.
func TestConcurrentReaders(t *testing.T) {
	const n = 1000
	s := Range(1, n)

	var mismatches atomic.Int64

	lotsa.Ops(100_000, 8, func(i, _ int) {
		if s.Len() != n {
			mismatches.Add(1)
			return
		}

		index := i % n
		value, ok := s.At(index)
		if !ok || value != index+1 {
			mismatches.Add(1)
		}
	})

	assert.Zero(t, mismatches.Load())
	assert.Equal(t, n, s.Len())
}

func TestConcurrentDerivations(t *testing.T) {
	base := Range(1, 100)

	var mismatches atomic.Int64

	lotsa.Ops(10_000, 8, func(i, _ int) {
		derived := base.Filter(isEven).Reverse().Take(10)
		if derived.Len() != 10 {
			mismatches.Add(1)
		}
		if Sum(derived) != 100+98+96+94+92+90+88+86+84+82 {
			mismatches.Add(1)
		}
	})

	assert.Zero(t, mismatches.Load())
	assert.Equal(t, 100, base.Len())
	assert.Equal(t, 1, firstOf(base))
}

func firstOf(s Seq[int]) int {
	value, _ := s.Head()
	return value
}
