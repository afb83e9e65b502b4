package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmap(t *testing.T) {
	var s Bitmap

	assert.False(t, s.IsSet(3))
	assert.Equal(t, -1, s.First())
	assert.Equal(t, 0, s.Len())

	s.Set(3)
	s.Set(70)
	s.Set(0)

	assert.True(t, s.IsSet(0))
	assert.True(t, s.IsSet(70))
	assert.False(t, s.IsSet(69))
	assert.False(t, s.IsSet(-1))
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 71, s.Len())
	assert.Equal(t, 0, s.First())

	var got []int
	s.Range(func(i int) bool {
		got = append(got, i)
		return true
	})

	assert.Equal(t, []int{0, 3, 70}, got)
}

func TestFromMask(t *testing.T) {
	s := FromMask(0b100110)

	assert.Equal(t, uint64(0b100110), s.Mask())
	assert.Equal(t, 1, s.First())
	assert.Equal(t, 5, s.Last())

	var got []int
	s.Range(func(i int) bool {
		got = append(got, i)
		return i < 2
	})

	assert.Equal(t, []int{1, 2}, got)
}
