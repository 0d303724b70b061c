package table_test

import (
	"testing"

	"porter/internal/adapters/out/memory/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	t.Run("should keep insertion order with prepends in front", func(t *testing.T) {
		tbl := table.New[int]()

		require.NoError(t, tbl.Append("a", 1))
		require.NoError(t, tbl.Append("b", 2))
		require.NoError(t, tbl.Prepend("c", 3))

		assert.Equal(t, []int{3, 1, 2}, tbl.All())
		assert.Equal(t, 3, tbl.Len())
	})

	t.Run("should reject duplicate keys and unknown replacements", func(t *testing.T) {
		tbl := table.New[int]()
		require.NoError(t, tbl.Append("a", 1))

		require.ErrorIs(t, tbl.Append("a", 2), table.ErrKeyExists)
		require.ErrorIs(t, tbl.Prepend("a", 2), table.ErrKeyExists)
		require.ErrorIs(t, tbl.Replace("b", 2), table.ErrKeyNotFound)

		require.NoError(t, tbl.Replace("a", 5))
		row, ok := tbl.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 5, row)
	})

	t.Run("should find the first match", func(t *testing.T) {
		tbl := table.New[int]()
		require.NoError(t, tbl.Append("a", 1))
		require.NoError(t, tbl.Append("b", 2))
		require.NoError(t, tbl.Append("c", 4))

		row, ok := tbl.Find(func(v int) bool { return v%2 == 0 })
		assert.True(t, ok)
		assert.Equal(t, 2, row)

		_, ok = tbl.Find(func(v int) bool { return v > 10 })
		assert.False(t, ok)
	})

	t.Run("should clone independently", func(t *testing.T) {
		tbl := table.New[int]()
		require.NoError(t, tbl.Append("a", 1))

		clone := tbl.Clone()
		require.NoError(t, tbl.Append("b", 2))
		require.NoError(t, tbl.Replace("a", 9))

		assert.Equal(t, []int{1}, clone.All())
	})
}

func TestSlot(t *testing.T) {
	slot := table.NewSlot[string]()

	_, ok := slot.Get()
	assert.False(t, ok)

	slot.Set("token")
	clone := slot.Clone()
	slot.Clear()

	_, ok = slot.Get()
	assert.False(t, ok)
	row, ok := clone.Get()
	assert.True(t, ok)
	assert.Equal(t, "token", row)
}
