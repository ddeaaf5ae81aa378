package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ a, b float64 }

	first := Name(key{1, 2})
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Name(key{1, 2}), "same key must keep its name")
	assert.Equal(t, "Ø", Name(nil))
}
