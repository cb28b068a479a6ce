package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SortOrder is a requested display ordering for inventory listings
type SortOrder string

// Supported orderings
const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// ErrNotSorted reports the first adjacent inversion in a displayed sequence
var ErrNotSorted = errors.New("sequence is not in the requested order")

// ParsePrice converts a displayed price such as "$29.99" to its numeric value
func ParsePrice(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "$")
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", s, err)
	}
	return value, nil
}

// ParseQuantity converts a displayed cart quantity to an integer.
// Unparsable values count as 0 rather than failing the read.
func ParseQuantity(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// NamesInOrder walks adjacent pairs of displayed names and fails on the first
// pair violating the requested lexicographic order
func NamesInOrder(names []string, order SortOrder) error {
	for i := 1; i < len(names); i++ {
		a, b := names[i-1], names[i]
		if inverted(strings.Compare(a, b), order) {
			return fmt.Errorf("%w: %s pair %q, %q at index %d", ErrNotSorted, order, a, b, i-1)
		}
	}
	return nil
}

// PricesInOrder parses displayed prices and fails on the first adjacent pair
// violating the requested numeric order
func PricesInOrder(prices []string, order SortOrder) error {
	values := make([]float64, len(prices))
	for i, p := range prices {
		v, err := ParsePrice(p)
		if err != nil {
			return err
		}
		values[i] = v
	}

	for i := 1; i < len(values); i++ {
		a, b := values[i-1], values[i]
		cmp := 0
		switch {
		case a < b:
			cmp = -1
		case a > b:
			cmp = 1
		}
		if inverted(cmp, order) {
			return fmt.Errorf("%w: %s pair %q, %q at index %d", ErrNotSorted, order, prices[i-1], prices[i], i-1)
		}
	}
	return nil
}

// inverted reports whether a comparison result violates the requested order.
// Equal neighbors are valid in either order.
func inverted(cmp int, order SortOrder) bool {
	if order == SortDescending {
		return cmp < 0
	}
	return cmp > 0
}
