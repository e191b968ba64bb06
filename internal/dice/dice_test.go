package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := r.Roll(4)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestRollDegenerateSides(t *testing.T) {
	r := New(nil)
	assert.Equal(t, 1, r.Roll(0))
	assert.Equal(t, 1, r.Roll(1))
}

func TestSeededRollersAgree(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Roll(6), b.Roll(6))
	}
}
