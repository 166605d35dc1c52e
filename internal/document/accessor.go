package document

// Typed field accessors. YAML decodes scalars loosely (an author may write
// "12", 12, or 12.0 for the same field), so every numeric accessor coerces
// across int, int64, uint64, and float64.

// Str returns the string at key, or def when absent or not a string.
func (r Record) Str(key, def string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return def
}

// Int returns the integer at key, or def when absent or not numeric.
// Float values are truncated toward zero.
func (r Record) Int(key string, def int) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Float returns the float at key, or def when absent or not numeric.
func (r Record) Float(key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return def
	}
}

// Bool returns the boolean at key, or def when absent or not a boolean.
func (r Record) Bool(key string, def bool) bool {
	if v, ok := r[key].(bool); ok {
		return v
	}
	return def
}

// Has reports whether key is present in the record, regardless of type.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// StrList returns the list of strings at key. Non-string entries are
// skipped. Absent or mistyped fields yield an empty slice, never nil error.
func (r Record) StrList(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// StrMap returns the string→string mapping at key. Entries whose key or
// value is not a string are skipped.
func (r Record) StrMap(key string) map[string]string {
	raw, ok := r[key].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// Record returns the nested record at key and whether one was present.
func (r Record) Record(key string) (Record, bool) {
	raw, ok := r[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Record(raw), true
}

// Records returns the list of nested records at key. Entries that are not
// mappings are skipped; the second return is the number skipped.
func (r Record) Records(key string) ([]Record, int) {
	raw, ok := r[key].([]any)
	if !ok {
		return nil, 0
	}
	var skipped int
	out := make([]Record, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		out = append(out, Record(m))
	}
	return out, skipped
}
