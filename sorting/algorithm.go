package sorting

import (
	"errors"
	"fmt"
)

// Algorithm selects the sort to run.
type Algorithm uint8

const (
	ExchangeSort Algorithm = iota
	PartitionSort
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms lists the selectable algorithms in display order.
var Algorithms = []Algorithm{ExchangeSort, PartitionSort}

// ParseAlgorithm maps a short command-line name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.Short() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Short is the command-line name.
func (a Algorithm) Short() string {
	switch a {
	case ExchangeSort:
		return "bs"
	case PartitionSort:
		return "qs"
	default:
		return "?"
	}
}

func (a Algorithm) String() string {
	switch a {
	case ExchangeSort:
		return "bubble sort"
	case PartitionSort:
		return "quick sort"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// MarshalText and UnmarshalText use the short name so config files can say
// "algorithm: qs".
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != ExchangeSort && a != PartitionSort {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.Short()), nil
}

func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Sort runs a over b, reporting to sink. The only error it returns is one
// produced by sink.
func Sort(a Algorithm, b *Buffer, sink Sink) error {
	if sink == nil {
		sink = Nop{}
	}
	switch a {
	case ExchangeSort:
		return exchangeSort(b, sink)
	case PartitionSort:
		return partitionSort(b, sink)
	default:
		panic(fmt.Sprintf("sorting: unknown algorithm %d", uint8(a)))
	}
}
