package oamap

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Basic(t *testing.T) {
	m := New[int](16)
	require.Equal(t, 17, m.Capacity())

	// Put and Get
	require.True(t, m.Put("foo", 42))

	v, ok := m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Update existing key
	require.False(t, m.Put("foo", 100))

	v, ok = m.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Size())

	// Get non-existent key
	_, ok = m.Get("bar")
	assert.False(t, ok)

	// Delete
	assert.True(t, m.Delete("foo"))
	assert.False(t, m.Contains("foo"))

	_, ok = m.Get("foo")
	assert.False(t, ok)

	// Delete non-existent key
	assert.False(t, m.Delete("foo"))
	assert.Zero(t, m.Size())
}

func TestMap_Entries(t *testing.T) {
	m := New(11, WithHashFunc[string](WeightedSumHash))

	for i := 1; i <= 5; i++ {
		m.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}

	want := []Entry[string]{
		{"1", "10"}, {"2", "20"}, {"3", "30"}, {"4", "40"}, {"5", "50"},
	}
	require.ElementsMatch(t, want, m.Entries())
	require.Equal(t, 11, m.Capacity())

	// Below size, ignored.
	m.Resize(2)
	require.Equal(t, 11, m.Capacity())
	require.ElementsMatch(t, want, m.Entries())

	m.Put("20", "200")
	require.Equal(t, 6, m.Size())
	require.LessOrEqual(t, m.LoadFactor(), 0.5)

	m.Delete("1")
	require.Equal(t, 5, m.Size())

	m.Resize(12)
	require.Equal(t, 13, m.Capacity())
	require.ElementsMatch(t, []Entry[string]{
		{"2", "20"}, {"3", "30"}, {"4", "40"}, {"5", "50"}, {"20", "200"},
	}, m.Entries())

	for _, e := range m.Entries() {
		v, ok := m.Get(e.Key)
		require.True(t, ok)
		require.Equal(t, e.Value, v)
	}
	require.False(t, m.Contains("1"))
}

func TestMap_Entries_SlotOrder(t *testing.T) {
	m := New(11, WithHashFunc[int](WeightedSumHash))

	// "1".."5" hash to slots 5..9, put in reverse.
	for i := 5; i >= 1; i-- {
		m.Put(strconv.Itoa(i), i)
	}

	keys := make([]string, 0, 5)
	for k := range m.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, keys)
}

func TestMap_Resize(t *testing.T) {
	m := New[int](23, WithHashFunc[int](SumHash))

	m.Put("key1", 10)
	require.Equal(t, 1, m.Size())
	require.Equal(t, 23, m.Capacity())

	m.Resize(30)
	require.Equal(t, 1, m.Size())
	require.Equal(t, 31, m.Capacity())

	v, ok := m.Get("key1")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.True(t, m.Contains("key1"))
}

func TestMap_Resize_KeepsEntries(t *testing.T) {
	m := New[int](79, WithHashFunc[int](WeightedSumHash))

	keys := make([]int, 0)
	for k := 1; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}

	for capacity := 111; capacity < 1000; capacity += 117 {
		m.Resize(capacity)

		require.GreaterOrEqual(t, m.Capacity(), capacity)
		require.True(t, IsPrime(m.Capacity()))
		require.LessOrEqual(t, m.LoadFactor(), 0.5)

		m.Put("some key", 1)
		require.True(t, m.Contains("some key"))
		m.Delete("some key")

		for _, k := range keys {
			v, ok := m.Get(strconv.Itoa(k))
			require.True(t, ok)
			require.Equal(t, k*42, v)
			require.False(t, m.Contains(strconv.Itoa(k+1)))
		}
		require.Equal(t, len(keys), m.Size())
	}
}

func TestMap_LoadFactor(t *testing.T) {
	m := New[int](101, WithHashFunc[int](SumHash))
	require.Zero(t, m.LoadFactor())

	m.Put("key1", 10)
	require.InDelta(t, 0.01, m.LoadFactor(), 0.001)

	m.Put("key2", 20)
	m.Put("key1", 30)
	require.InDelta(t, 0.02, m.LoadFactor(), 0.001)
}

func TestMap_AvailableSlots(t *testing.T) {
	m := New[int](101, WithHashFunc[int](SumHash))
	require.Equal(t, 101, m.AvailableSlots())

	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key1", 30)
	m.Put("key4", 40)
	require.Equal(t, 98, m.AvailableSlots())

	m.Delete("key4")
	require.Equal(t, 99, m.AvailableSlots())
}

func TestMap_Stats(t *testing.T) {
	m := New[int](16)

	stats := m.Stats()
	assert.Equal(t, Stats{Capacity: 17, AvailableSlots: 17}, stats)

	for i := range 5 {
		m.Put(strconv.Itoa(i), i)
	}
	m.Delete("0")
	m.Delete("1")

	stats = m.Stats()
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 17, stats.Capacity)
	assert.Equal(t, 2, stats.Tombstones)
	assert.Equal(t, 14, stats.AvailableSlots)
	assert.InDelta(t, 3.0/17.0, stats.LoadFactor, 1e-9)
}

func TestMap_Clear(t *testing.T) {
	m := New[int](101)

	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key1", 30)
	require.Equal(t, 2, m.Size())

	m.Clear()

	assert.Zero(t, m.Size())
	assert.Equal(t, 101, m.Capacity())

	_, ok := m.Get("key1")
	assert.False(t, ok)
}

func TestMap_ContainsAfterDelete(t *testing.T) {
	m := New[int](11)

	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key3", 30)
	require.True(t, m.Contains("key3"))

	m.Delete("key3")
	require.False(t, m.Contains("key3"))
	require.True(t, m.Contains("key1"))
	require.True(t, m.Contains("key2"))

	m.Put("key3", 31)
	v, ok := m.Get("key3")
	require.True(t, ok)
	require.Equal(t, 31, v)
}

func TestMap_SizeTracksDistinctKeys(t *testing.T) {
	m := New[int](53, WithHashFunc[int](SumHash))

	for i := range 150 {
		m.Put("str"+strconv.Itoa(i/3), i)
	}
	require.Equal(t, 50, m.Size())

	for i := 0; i < 50; i += 2 {
		require.True(t, m.Delete("str"+strconv.Itoa(i)))
	}
	require.Equal(t, 25, m.Size())

	for i := range 50 {
		v, ok := m.Get("str" + strconv.Itoa(i))
		if i%2 == 0 {
			require.False(t, ok)
			continue
		}

		require.True(t, ok)
		require.Equal(t, i*3+2, v)
	}
}

func TestMap_WithHashFunc(t *testing.T) {
	customHash := func(k string) uint64 {
		return uint64(len(k) * 31)
	}

	m := New(16, WithHashFunc[int](customHash))

	m.Put("a", 100)
	m.Put("b", 200)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	v, ok = m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 200, v)
}
