package cmd

// Helpers for reading loosely typed MCP tool arguments.

// StringParam returns params[key] as a string, or def when absent.
func StringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// IntParam returns params[key] as an int, or def when absent. JSON numbers
// arrive as float64.
func IntParam(params map[string]interface{}, key string, def int) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// FloatParam returns params[key] as a float64, or def when absent.
func FloatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// BoolParam returns params[key] as a bool, or def when absent.
func BoolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return def
}
