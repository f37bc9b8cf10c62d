package munge

// Value is a single cell of a Dataset. A Value is one of: nil (the null
// marker), a Go numeric type, a string, a bool, or a []Value holding a
// pre-aggregated multi-value cell.
type Value = interface{}

// Row is a single record of a Dataset, mapping column names to cell values.
// Rows are not required to share a uniform column set.
type Row map[string]Value

// Dataset is an ordered sequence of Rows. A Dataset is owned by the caller
// and is not safe for concurrent use.
type Dataset []Row

// IsMissing returns true iff the given value is semantically missing: the
// null marker or the empty string. Absence of a key from a Row is not
// missing - it is absence, and transforms treat the two differently.
func IsMissing(v Value) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// Clone returns a shallow copy of this Row. Cell values are shared with the
// original, but adding or replacing cells on the copy does not affect it.
func (r Row) Clone() Row {
	clone := make(Row, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}

// Clone returns a copy of this Dataset with every Row cloned.
func (d Dataset) Clone() Dataset {
	clone := make(Dataset, len(d))
	for i, row := range d {
		clone[i] = row.Clone()
	}
	return clone
}
