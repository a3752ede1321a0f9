package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Select walks a dotted path (for example "realms" or "guild.members") into a
// decoded JSON document and returns the objects found there. An object at the
// end of the path is returned as a single record; an empty path starts at the root.
func Select(data any, path string) ([]Record, error) {
	current := data
	if path = strings.Trim(path, "."); path != "" {
		for _, segment := range strings.Split(path, ".") {
			next, err := step(current, segment)
			if err != nil {
				return nil, &SelectionError{Path: path, Segment: segment, Err: err}
			}
			current = next
		}
	}

	switch v := current.(type) {
	case map[string]any:
		return []Record{v}, nil
	case []any:
		records := make([]Record, 0, len(v))
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, &SelectionError{Path: path, Segment: strconv.Itoa(i), Err: ErrNotAList}
			}
			records = append(records, obj)
		}
		return records, nil
	default:
		return nil, &SelectionError{Path: path, Err: ErrNotAList}
	}
}

// Apply returns the records matching f, keeping their order
func Apply(f Filter, records []Record) []Record {
	if f == nil {
		return records
	}
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if f.Evaluate(r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func lookup(record Record, path string) (any, bool) {
	var current any = record
	for _, segment := range strings.Split(path, ".") {
		next, err := step(current, segment)
		if err != nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

func step(current any, segment string) (any, error) {
	switch v := current.(type) {
	case map[string]any:
		next, ok := v[segment]
		if !ok {
			return nil, fmt.Errorf("no field %q", segment)
		}
		return next, nil
	case []any:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(v) {
			return nil, fmt.Errorf("invalid index %q", segment)
		}
		return v[idx], nil
	default:
		return nil, fmt.Errorf("cannot descend into %T", current)
	}
}
