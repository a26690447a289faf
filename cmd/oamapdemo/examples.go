package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/homier/oamap"
)

type newMapFunc func(capacity int, hash oamap.HashFunc) *oamap.Map[any]

// errWriter remembers the first write error and drops every write after it,
// so examples can print freely and run checks once per example.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	n, err := ew.w.Write(p)
	ew.err = err

	return n, err
}

type example struct {
	name string
	run  func(w io.Writer, newMap newMapFunc)
}

var examples = []example{
	{"put1", examplePut1},
	{"put2", examplePut2},
	{"table_load1", exampleTableLoad1},
	{"table_load2", exampleTableLoad2},
	{"empty_buckets1", exampleEmptyBuckets1},
	{"empty_buckets2", exampleEmptyBuckets2},
	{"resize1", exampleResize1},
	{"resize2", exampleResize2},
	{"get1", exampleGet1},
	{"get2", exampleGet2},
	{"contains_key1", exampleContainsKey1},
	{"contains_key2", exampleContainsKey2},
	{"remove1", exampleRemove1},
	{"clear1", exampleClear1},
	{"clear2", exampleClear2},
	{"get_keys_and_values1", exampleGetKeysAndValues1},
}

// round2 rounds to two decimals and always keeps a fractional part,
// so 0 prints as "0.0".
func round2(f float64) string {
	s := strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func lookup(m *oamap.Map[any], key string) any {
	v, ok := m.Get(key)
	if !ok {
		return "None"
	}

	return v
}

func examplePut1(w io.Writer, newMap newMapFunc) {
	m := newMap(53, oamap.SumHash)
	for i := range 150 {
		m.Put("str"+strconv.Itoa(i), i*100)
		if i%25 == 24 {
			fmt.Fprintln(w, m.AvailableSlots(), round2(m.LoadFactor()), m.Size(), m.Capacity())
		}
	}
}

func examplePut2(w io.Writer, newMap newMapFunc) {
	m := newMap(41, oamap.WeightedSumHash)
	for i := range 50 {
		m.Put("str"+strconv.Itoa(i/3), i*100)
		if i%10 == 9 {
			fmt.Fprintln(w, m.AvailableSlots(), round2(m.LoadFactor()), m.Size(), m.Capacity())
		}
	}
}

func exampleTableLoad1(w io.Writer, newMap newMapFunc) {
	m := newMap(101, oamap.SumHash)
	fmt.Fprintln(w, round2(m.LoadFactor()))
	m.Put("key1", 10)
	fmt.Fprintln(w, round2(m.LoadFactor()))
	m.Put("key2", 20)
	fmt.Fprintln(w, round2(m.LoadFactor()))
	m.Put("key1", 30)
	fmt.Fprintln(w, round2(m.LoadFactor()))
}

func exampleTableLoad2(w io.Writer, newMap newMapFunc) {
	m := newMap(53, oamap.SumHash)
	for i := range 50 {
		m.Put("key"+strconv.Itoa(i), i*100)
		if i%10 == 0 {
			fmt.Fprintln(w, round2(m.LoadFactor()), m.Size(), m.Capacity())
		}
	}
}

func exampleEmptyBuckets1(w io.Writer, newMap newMapFunc) {
	m := newMap(101, oamap.SumHash)
	fmt.Fprintln(w, m.AvailableSlots(), m.Size(), m.Capacity())
	for _, kv := range []struct {
		k string
		v int
	}{{"key1", 10}, {"key2", 20}, {"key1", 30}, {"key4", 40}} {
		m.Put(kv.k, kv.v)
		fmt.Fprintln(w, m.AvailableSlots(), m.Size(), m.Capacity())
	}
}

func exampleEmptyBuckets2(w io.Writer, newMap newMapFunc) {
	m := newMap(53, oamap.SumHash)
	for i := range 150 {
		m.Put("key"+strconv.Itoa(i), i*100)
		if i%30 == 0 {
			fmt.Fprintln(w, m.AvailableSlots(), m.Size(), m.Capacity())
		}
	}
}

func exampleResize1(w io.Writer, newMap newMapFunc) {
	m := newMap(23, oamap.SumHash)
	m.Put("key1", 10)
	fmt.Fprintln(w, m.Size(), m.Capacity(), lookup(m, "key1"), m.Contains("key1"))
	m.Resize(30)
	fmt.Fprintln(w, m.Size(), m.Capacity(), lookup(m, "key1"), m.Contains("key1"))
}

func exampleResize2(w io.Writer, newMap newMapFunc) {
	m := newMap(79, oamap.WeightedSumHash)

	var keys []int
	for k := 1; k < 1000; k += 13 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	fmt.Fprintln(w, m.Size(), m.Capacity())

	for capacity := 111; capacity < 1000; capacity += 117 {
		m.Resize(capacity)

		if m.LoadFactor() > 0.5 {
			fmt.Fprintf(w, "load factor %s above 0.5 after resize\n", round2(m.LoadFactor()))
		}

		m.Put("some key", "some value")
		result := m.Contains("some key")
		m.Delete("some key")

		for _, k := range keys {
			result = result && m.Contains(strconv.Itoa(k))
			result = result && !m.Contains(strconv.Itoa(k+1))
		}
		fmt.Fprintln(w, capacity, result, m.Size(), m.Capacity(), round2(m.LoadFactor()))
	}
}

func exampleGet1(w io.Writer, newMap newMapFunc) {
	m := newMap(31, oamap.SumHash)
	fmt.Fprintln(w, lookup(m, "key"))
	m.Put("key1", 10)
	fmt.Fprintln(w, lookup(m, "key1"))
}

func exampleGet2(w io.Writer, newMap newMapFunc) {
	m := newMap(151, oamap.WeightedSumHash)
	for i := 200; i < 300; i += 7 {
		m.Put(strconv.Itoa(i), i*10)
	}
	fmt.Fprintln(w, m.Size(), m.Capacity())

	for i := 200; i < 300; i += 21 {
		for _, k := range []int{i, i + 1} {
			v := lookup(m, strconv.Itoa(k))
			fmt.Fprintln(w, k, v, v == any(k*10))
		}
	}
}

func exampleContainsKey1(w io.Writer, newMap newMapFunc) {
	m := newMap(11, oamap.SumHash)
	fmt.Fprintln(w, m.Contains("key1"))
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key3", 30)
	for _, k := range []string{"key1", "key4", "key2", "key3"} {
		fmt.Fprintln(w, m.Contains(k))
	}
	m.Delete("key3")
	fmt.Fprintln(w, m.Contains("key3"))
}

func exampleContainsKey2(w io.Writer, newMap newMapFunc) {
	m := newMap(79, oamap.WeightedSumHash)

	var keys []int
	for k := 1; k < 1000; k += 20 {
		keys = append(keys, k)
		m.Put(strconv.Itoa(k), k*42)
	}
	fmt.Fprintln(w, m.Size(), m.Capacity())

	result := true
	for _, k := range keys {
		result = result && m.Contains(strconv.Itoa(k))
		result = result && !m.Contains(strconv.Itoa(k+1))
	}
	fmt.Fprintln(w, result)
}

func exampleRemove1(w io.Writer, newMap newMapFunc) {
	m := newMap(53, oamap.SumHash)
	fmt.Fprintln(w, lookup(m, "key1"))
	m.Put("key1", 10)
	fmt.Fprintln(w, lookup(m, "key1"))
	m.Delete("key1")
	fmt.Fprintln(w, lookup(m, "key1"))
	m.Delete("key4")
}

func exampleClear1(w io.Writer, newMap newMapFunc) {
	m := newMap(101, oamap.SumHash)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Put("key1", 10)
	m.Put("key2", 20)
	m.Put("key1", 30)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Clear()
	fmt.Fprintln(w, m.Size(), m.Capacity())
}

func exampleClear2(w io.Writer, newMap newMapFunc) {
	m := newMap(53, oamap.SumHash)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Put("key1", 10)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Put("key2", 20)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Resize(100)
	fmt.Fprintln(w, m.Size(), m.Capacity())
	m.Clear()
	fmt.Fprintln(w, m.Size(), m.Capacity())
}

func exampleGetKeysAndValues1(w io.Writer, newMap newMapFunc) {
	m := newMap(11, oamap.WeightedSumHash)
	for i := 1; i < 6; i++ {
		m.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}
	fmt.Fprintln(w, m.Entries())

	m.Resize(2)
	fmt.Fprintln(w, m.Entries())

	m.Put("20", "200")
	m.Delete("1")
	m.Resize(12)
	fmt.Fprintln(w, m.Entries())
}
