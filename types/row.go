package types

// Row is a single raw result row from a Resource Graph query.
// The schema is query-specific and loosely typed, so access goes through
// getters that never fail: a missing, null, or mistyped field yields the
// caller's default. Detectors rely on this to emit a record for every row
// no matter which optional fields the service returned.
type Row map[string]any

// Str returns the string at key, or def when the field is missing, null,
// not a string, or empty. Empty strings coalesce to the default because
// Resource Graph projects absent properties as "" as often as null.
func (r Row) Str(key, def string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return def
	}
	return s
}

// Int returns the integer at key, or def when missing, null, or not numeric.
// Resource Graph rows arrive JSON-decoded, so numbers are usually float64.
func (r Row) Int(key string, def int) int {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	default:
		return def
	}
}

// Float returns the float at key, or def when missing, null, or not numeric.
func (r Row) Float(key string, def float64) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// Bool returns the boolean at key, false when missing or mistyped.
func (r Row) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// Map returns the nested object at key, or an empty map.
func (r Row) Map(key string) map[string]any {
	v, ok := r[key]
	if !ok || v == nil {
		return map[string]any{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

// Slice returns the array at key, or nil when missing or mistyped.
func (r Row) Slice(key string) []any {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.([]any)
	if !ok {
		return nil
	}
	return s
}

// Tags returns the tag object at key flattened to string values.
// Non-string tag values are dropped.
func (r Row) Tags(key string) map[string]string {
	raw := r.Map(key)
	tags := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			tags[k] = s
		}
	}
	return tags
}
