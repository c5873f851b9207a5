package querybuilder

import "strings"

// join glues parts together with sep between every consecutive pair.
// An empty parts yields "" rather than failing, so Insert and Update with no
// values still build (into text no database will accept).
func join(parts []string, sep string) string {
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, sep)
}
