package merger

import (
	"fmt"
	"regexp"
	"strings"
)

const unnamedColumn = "unnamed_column"

var (
	// invalidCharPattern matches everything outside letters, digits and whitespace.
	invalidCharPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	// separatorRunPattern matches runs of whitespace and underscores.
	separatorRunPattern = regexp.MustCompile(`[\s_]+`)
)

// standardizeColumnName maps a raw header to its canonical form: trimmed,
// special characters replaced with underscores, separator runs collapsed,
// lowercased, outer underscores stripped. Empty input or an empty result
// falls back to "unnamed_column". The mapping is idempotent.
func standardizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return unnamedColumn
	}

	name = invalidCharPattern.ReplaceAllString(name, "_")
	name = separatorRunPattern.ReplaceAllString(name, "_")
	name = strings.ToLower(name)
	name = strings.Trim(name, "_")

	if name == "" {
		return unnamedColumn
	}
	return name
}

// resolveCollisions makes a standardized column list globally unique within
// one frame. Scanning left to right, the first occurrence of a name is kept;
// every later occurrence gets the smallest _N suffix not already assigned.
// Provenance columns pass through untouched.
func resolveCollisions(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]struct{}, len(names))

	for i, name := range names {
		if isProvenance(name) {
			out[i] = name
			used[name] = struct{}{}
			continue
		}
		if _, taken := used[name]; !taken {
			out[i] = name
			used[name] = struct{}{}
			continue
		}
		for n := 1; ; n++ {
			candidate := fmt.Sprintf("%s_%d", name, n)
			if _, taken := used[candidate]; !taken {
				out[i] = candidate
				used[candidate] = struct{}{}
				break
			}
		}
	}
	return out
}
