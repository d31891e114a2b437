package services

// Helpers for partial updates. Handlers pass the raw JSON object through so
// absent fields can be told apart from zero values; these coerce the
// interface{} values the JSON decoder produces.

func stringField(raw map[string]interface{}, key string) (string, bool) {
	v, ok := raw[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func boolField(raw map[string]interface{}, key string) (bool, bool) {
	v, ok := raw[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// intField handles the float64 the JSON decoder uses for numbers.
func intField(raw map[string]interface{}, key string) (int, bool) {
	v, ok := raw[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// tagsField coerces a JSON array into the []string the serialized tags
// column expects. The column serializer handles the encoding.
func tagsField(raw map[string]interface{}, key string) ([]string, bool) {
	v, ok := raw[key]
	if !ok {
		return nil, false
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		tags = append(tags, s)
	}
	return tags, true
}
