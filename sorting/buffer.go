package sorting

import (
	"strconv"
	"strings"

	"sortviz/rng"
)

// Order is the result of comparing two buffer slots.
type Order int8

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1
)

// View is read-only access to a buffer.
type View interface {
	Len() int
	Get(i int) int
}

// Buffer is a fixed-length, mutable sequence of integers.
//
// Indices are never range-checked beyond what Go does for slices: the
// algorithms never issue an out-of-range access.
type Buffer struct {
	vals []int
}

// NewBuffer returns a zeroed buffer of length n.
func NewBuffer(n int) *Buffer {
	return &Buffer{vals: make([]int, n)}
}

// BufferOf returns a buffer holding a copy of vals.
func BufferOf(vals ...int) *Buffer {
	return &Buffer{vals: append([]int(nil), vals...)}
}

func (b *Buffer) Len() int         { return len(b.vals) }
func (b *Buffer) Get(i int) int    { return b.vals[i] }
func (b *Buffer) Set(i int, v int) { b.vals[i] = v }

func (b *Buffer) Swap(i, j int) {
	b.vals[i], b.vals[j] = b.vals[j], b.vals[i]
}

func (b *Buffer) Compare(i, j int) Order {
	switch x, y := b.vals[i], b.vals[j]; {
	case x < y:
		return Less
	case x > y:
		return Greater
	default:
		return Equal
	}
}

// Values returns a copy of the contents.
func (b *Buffer) Values() []int {
	return append([]int(nil), b.vals...)
}

// IsSorted reports whether the contents are non-decreasing.
func (b *Buffer) IsSorted() bool {
	for i := 1; i < len(b.vals); i++ {
		if b.vals[i-1] > b.vals[i] {
			return false
		}
	}
	return true
}

// String formats the buffer as [v0, v1, ..., vN-1].
func (b *Buffer) String() string {
	return format(b.vals)
}

// Populate fills b with values drawn uniformly from [1, bound].
func Populate(b *Buffer, bound int, s *rng.Sampler) {
	for i := range b.vals {
		b.vals[i] = s.Intn(bound) + 1
	}
}

func format(vals []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
