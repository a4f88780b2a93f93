package maven

import "strings"

// Expand substitutes ${name} placeholders in text against the property
// table. Undeclared names resolve to the empty string, never an error.
//
// After each splice the scan restarts from the beginning of the resulting
// string, so replacement values that themselves contain placeholders are
// expanded too. A placeholder with no closing brace is left untouched.
func Expand(props map[string]string, text string) string {
	for {
		idx := strings.Index(text, "${")
		if idx < 0 {
			return text
		}
		end := strings.Index(text[idx+2:], "}")
		if end < 0 {
			return text
		}
		end += idx + 2
		name := text[idx+2 : end]
		text = text[:idx] + props[name] + text[end+1:]
	}
}
