package transform

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-munge/munge"
	"github.com/go-munge/munge/errors"
	"github.com/spf13/cast"
)

// asFloat narrows a numeric cell of any Go numeric type to float64. The
// boolean result is false for non-numeric cells. Strings are never narrowed,
// even when they look numeric - that would be silent coercion.
func asFloat(v munge.Value) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// splitValues classifies an accumulated column as homogeneous numeric or
// homogeneous string data. Mixing the two classes, or any other cell type,
// fails with a TypeAggregationError rather than coercing.
func splitValues(col string, values []munge.Value) (nums []float64, strs []string, err error) {
	for _, v := range values {
		if f, ok := asFloat(v); ok {
			if strs != nil {
				return nil, nil, errors.TypeAggregationError{Col: col}
			}
			nums = append(nums, f)
			continue
		}
		if s, ok := v.(string); ok {
			if nums != nil {
				return nil, nil, errors.TypeAggregationError{Col: col}
			}
			strs = append(strs, s)
			continue
		}
		return nil, nil, errors.TypeAggregationError{Col: col}
	}
	return nums, strs, nil
}

// keyDigest produces a stable digest for a grouping or pivot key. Numeric
// keys digest by numeric value, so an int 4 and a float64 4.0 land in the
// same bucket, and keys of different classes never collide on their string
// forms.
func keyDigest(key munge.Value) uint64 {
	hasher := xxhash.New()
	if f, ok := asFloat(key); ok {
		hasher.WriteString("n:")
		hasher.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	} else {
		switch k := key.(type) {
		case string:
			hasher.WriteString("s:")
			hasher.WriteString(k)
		case bool:
			hasher.WriteString("b:")
			hasher.WriteString(strconv.FormatBool(k))
		default:
			hasher.WriteString("v:")
			hasher.WriteString(fmt.Sprintf("%v", key))
		}
	}
	return hasher.Sum64()
}
