package normalize

// UnwrapList locates the actual array of records in a backend response. The
// backend sometimes returns a bare array and sometimes wraps it under an
// endpoint-specific key, so callers pass their candidate keys in priority
// order. Anything unrecognizable yields an empty list, never an error.
func UnwrapList(raw any, candidateKeys ...string) []any {
	if list, ok := raw.([]any); ok {
		return list
	}
	if rec, ok := AsRecord(raw); ok {
		for _, key := range candidateKeys {
			if list, ok := rec[key].([]any); ok {
				return list
			}
		}
	}
	return []any{}
}

// UnwrapRecords is UnwrapList with every element narrowed to a Record.
// Non-object elements are dropped.
func UnwrapRecords(raw any, candidateKeys ...string) []Record {
	list := UnwrapList(raw, candidateKeys...)
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if rec, ok := AsRecord(item); ok {
			records = append(records, rec)
		}
	}
	return records
}
