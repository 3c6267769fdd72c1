package bloom_test

import (
	"testing"

	"github.com/fwojciec/docchat/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URL tests positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)
		f.Add("https://example.com/a")

		assert.True(t, f.Test("https://example.com/a"))
	})

	t.Run("fresh filter tests negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(100, 0.01)

		assert.False(t, f.Test("https://example.com/a"))
	})
}
