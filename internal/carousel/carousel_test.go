package carousel_test

import (
	"testing"

	"bdgc-website/internal/carousel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sixItems(t *testing.T) *carousel.Carousel[string] {
	t.Helper()
	c, err := carousel.New([]string{"a", "b", "c", "d", "e", "f"})
	require.NoError(t, err)
	return c
}

func TestNew_Empty(t *testing.T) {
	_, err := carousel.New[int](nil)
	assert.ErrorIs(t, err, carousel.ErrEmpty)
}

func TestPreviousWrapsFromZero(t *testing.T) {
	c := sixItems(t)
	require.Equal(t, 0, c.Index())

	c.Previous()

	assert.Equal(t, 5, c.Index())
	assert.Equal(t, "f", c.Current())
}

func TestNextCycleClosure(t *testing.T) {
	c := sixItems(t)
	for start := 0; start < c.Len(); start++ {
		require.NoError(t, c.JumpTo(start))
		for i := 0; i < c.Len(); i++ {
			c.Next()
		}
		assert.Equal(t, start, c.Index())
	}
}

func TestPreviousUndoesNext(t *testing.T) {
	c := sixItems(t)
	require.NoError(t, c.JumpTo(3))

	c.Next()
	c.Previous()

	assert.Equal(t, 3, c.Index())
}

func TestJumpTo(t *testing.T) {
	c := sixItems(t)

	assert.NoError(t, c.JumpTo(5))
	assert.Equal(t, "f", c.Current())

	for _, k := range []int{6, -1, 100} {
		err := c.JumpTo(k)
		assert.ErrorIs(t, err, carousel.ErrOutOfRange, k)
		assert.Equal(t, 5, c.Index(), "failed jump must not move the index")
	}

	// repeated identical jumps are harmless
	assert.NoError(t, c.JumpTo(2))
	assert.NoError(t, c.JumpTo(2))
	assert.Equal(t, 2, c.Index())
}

func TestPeekDoesNotMove(t *testing.T) {
	c := sixItems(t)

	assert.Equal(t, 1, c.PeekNext())
	assert.Equal(t, 5, c.PeekPrevious())
	assert.Equal(t, 0, c.Index())
}

func TestSingleItem(t *testing.T) {
	c, err := carousel.New([]int{42})
	require.NoError(t, err)

	c.Next()
	assert.Equal(t, 0, c.Index())
	c.Previous()
	assert.Equal(t, 0, c.Index())
}

func TestItemsIsACopy(t *testing.T) {
	src := []string{"x", "y"}
	c, err := carousel.New(src)
	require.NoError(t, err)

	src[0] = "changed"
	got := c.Items()
	got[1] = "changed"

	assert.Equal(t, []string{"x", "y"}, c.Items())
}
