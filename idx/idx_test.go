package idx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-io/globular/idx"
)

func mkBasic(n int) idx.BasicIdx { return idx.BasicIdx(n) }

func TestIdxVec_PushGetContains(t *testing.T) {
	v := idx.NewIdxVec[idx.BasicIdx, string](mkBasic, 0)

	a := v.Push("alpha")
	b := v.Push("beta")

	require.Equal(t, idx.BasicIdx(0), a)
	require.Equal(t, idx.BasicIdx(1), b)
	require.Equal(t, 2, v.Len())

	assert.True(t, v.Contains(a))
	assert.True(t, v.Contains(b))
	assert.False(t, v.Contains(idx.BasicIdx(2)))
	assert.False(t, v.Contains(idx.BasicIdx(-1)))

	val, ok := v.Get(a)
	require.True(t, ok)
	assert.Equal(t, "alpha", val)

	_, ok = v.Get(idx.BasicIdx(5))
	assert.False(t, ok)
}

func TestIdxVec_Set(t *testing.T) {
	v := idx.NewIdxVec[idx.BasicIdx, int](mkBasic, 0)
	i := v.Push(1)
	v.Set(i, 42)
	val, ok := v.Get(i)
	require.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestIdxVec_SetOutOfRangePanics(t *testing.T) {
	v := idx.NewIdxVec[idx.BasicIdx, int](mkBasic, 0)
	assert.Panics(t, func() { v.Set(idx.BasicIdx(0), 1) })
}

func TestIdxVec_KeysValuesOrder(t *testing.T) {
	v := idx.NewIdxVec[idx.BasicIdx, int](mkBasic, 0)
	for i := 0; i < 5; i++ {
		v.Push(i * 10)
	}
	keys := v.Keys()
	for i, k := range keys {
		assert.Equal(t, idx.BasicIdx(i), k)
	}
	assert.Equal(t, []int{0, 10, 20, 30, 40}, v.Values())
}

func TestIdxVec_Map(t *testing.T) {
	v := idx.NewIdxVec[idx.BasicIdx, int](mkBasic, 0)
	v.Push(1)
	v.Push(2)
	doubled := v.Map(func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4}, doubled.Values())
	// original is untouched
	assert.Equal(t, []int{1, 2}, v.Values())
}
