package counted

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isEven(n int) bool {
	return n%2 == 0
}

func TestFilter(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		s := Range(1, 5).Filter(isEven)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []int{2, 4}, s.Values())
	})

	t.Run("nothing kept", func(t *testing.T) {
		s := Range(1, 5).Filter(func(e int) bool { return e > 100 })
		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())
	})

	t.Run("everything kept", func(t *testing.T) {
		s := Range(1, 5).Filter(func(e int) bool { return true })
		assert.Equal(t, 5, s.Len())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())
	})

	t.Run("count equals the number of satisfying elements", func(t *testing.T) {
		s := FromSlice([]int{1, 4, 2, 7, 6, 9})
		filtered := s.Filter(isEven)

		satisfying := 0
		for _, e := range s.Values() {
			if isEven(e) {
				satisfying++
			}
		}

		assert.Equal(t, satisfying, filtered.Len())
	})
}

func TestFilterMap(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		//keep the strings that parse as integers
		s := FilterMap(func(e string) (int, bool) {
			n, err := strconv.Atoi(e)
			return n, err == nil
		}, FromSlice([]string{"1", "x", "2", "", "3"}))

		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []int{1, 2, 3}, s.Values())
	})

	t.Run("nothing kept", func(t *testing.T) {
		s := FilterMap(func(e int) (int, bool) { return 0, false }, Range(1, 5))
		assert.Zero(t, s.Len())
		assert.True(t, s.IsEmpty())
	})
}

func TestPartition(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		kept, rejected := Range(1, 5).Partition(isEven)

		assert.Equal(t, 2, kept.Len())
		assert.Equal(t, []int{2, 4}, kept.Values())

		assert.Equal(t, 3, rejected.Len())
		assert.Equal(t, []int{1, 3, 5}, rejected.Values())
	})

	t.Run("counts add up to the original count", func(t *testing.T) {
		s := FromSlice([]int{4, 1, 8, 3, 5, 6})
		kept, rejected := s.Partition(isEven)

		assert.Equal(t, s.Len(), kept.Len()+rejected.Len())
	})

	t.Run("empty input", func(t *testing.T) {
		kept, rejected := Empty[int]().Partition(isEven)
		assert.True(t, kept.IsEmpty())
		assert.True(t, rejected.IsEmpty())
	})
}
