package schema

import "strings"

// Select joins columns with an optional table alias for use in SELECT lists.
func Select(alias string, columns ...string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	prefixed := make([]string, len(columns))
	for i, column := range columns {
		prefixed[i] = alias + "." + column
	}
	return strings.Join(prefixed, ", ")
}
