package sort

import (
	"cmp"

	"github.com/pkg/errors"
)

// ErrTypeMismatch is returned when two values have no common ordering.
var ErrTypeMismatch = errors.New("type mismatch")

// Values sorts dynamically typed values in place. Numbers of any Go numeric
// kind order against each other and strings against strings. The first pair
// that cannot be ordered aborts the sort with an error wrapping
// ErrTypeMismatch; swaps made before it are not undone.
func Values(v []interface{}) ([]interface{}, error) {
	_, err := bubble(len(v), func(i, j int) (bool, error) {
		c, err := compareValues(v[i], v[j])
		if err != nil {
			return false, errors.Wrapf(err, "compare index %d with %d", i, j)
		}
		return c < 0, nil
	}, func(i, j int) {
		v[i], v[j] = v[j], v[i]
	}, Options{})
	return v, err
}

func compareValues(a, b interface{}) (int, error) {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs), nil
		}
		return 0, errors.Wrapf(ErrTypeMismatch, "%T and %T", a, b)
	}
	ai, aInt := toInt64(a)
	bi, bInt := toInt64(b)
	au, aUint := toUint64(a)
	bu, bUint := toUint64(b)
	switch {
	case aInt && bInt:
		return cmp.Compare(ai, bi), nil
	case aUint && bUint:
		return cmp.Compare(au, bu), nil
	case aInt && bUint:
		if ai < 0 {
			return -1, nil
		}
		return cmp.Compare(uint64(ai), bu), nil
	case aUint && bInt:
		if bi < 0 {
			return 1, nil
		}
		return cmp.Compare(au, uint64(bi)), nil
	}
	af, aNum := toFloat64(a)
	bf, bNum := toFloat64(b)
	if aNum && bNum {
		return cmp.Compare(af, bf), nil
	}
	return 0, errors.Wrapf(ErrTypeMismatch, "%T and %T", a, b)
}

func toInt64(x interface{}) (int64, bool) {
	switch n := x.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

// toUint64 covers the unsigned kinds toInt64 cannot hold exactly.
func toUint64(x interface{}) (uint64, bool) {
	switch n := x.(type) {
	case uint:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	}
	return 0, false
}

func toFloat64(x interface{}) (float64, bool) {
	if n, ok := toInt64(x); ok {
		return float64(n), true
	}
	if n, ok := toUint64(x); ok {
		return float64(n), true
	}
	switch n := x.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
