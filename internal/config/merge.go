package config

// editorMergeDepth bounds recursive merging of editor settings values.
// Tables nested deeper than this are replaced wholesale by the override.
const editorMergeDepth = 3

// mergeValues merges two decoded TOML values. Table keys present in only
// one side are copied as-is; keys present in both sides merge recursively
// while depth budget remains, after which b's value replaces a's
// entirely. Non-table values always resolve to b. Neither input is
// mutated; a nil side yields a copy of the other.
func mergeValues(a, b any, maxDepth int) any {
	if a == nil {
		return cloneValue(b)
	}
	if b == nil {
		return cloneValue(a)
	}

	am, aIsMap := a.(map[string]any)
	bm, bIsMap := b.(map[string]any)
	if !aIsMap || !bIsMap || maxDepth <= 0 {
		return cloneValue(b)
	}

	out := make(map[string]any, len(am)+len(bm))
	for k, v := range am {
		out[k] = cloneValue(v)
	}
	for k, v := range bm {
		if existing, ok := out[k]; ok {
			out[k] = mergeValues(existing, v, maxDepth-1)
		} else {
			out[k] = cloneValue(v)
		}
	}
	return out
}

// cloneValue creates a deep copy of a decoded TOML value.
func cloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		return cloneSlice(v)
	default:
		return val
	}
}

// cloneMap creates a deep copy of a map.
func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = cloneValue(v)
	}
	return dst
}

// cloneSlice creates a deep copy of a slice.
func cloneSlice(src []any) []any {
	if src == nil {
		return nil
	}
	dst := make([]any, len(src))
	for i, v := range src {
		dst[i] = cloneValue(v)
	}
	return dst
}
