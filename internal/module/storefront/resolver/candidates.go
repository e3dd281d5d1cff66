package resolver

import "strings"

// SportTypeCandidates builds the set of spellings a sport may appear under
// in upstream-fed columns. For each input it generates the value itself,
// the value with hyphens removed, and the value with hyphens as spaces,
// lowercased and trimmed, then unions both sets. "formula-1", "formula1"
// and "formula 1" all land in the same candidate set, which is what lets
// lookups tolerate upstream spelling drift.
func SportTypeCandidates(sportSlug, sportType string) []string {
	seen := make(map[string]struct{}, 6)
	candidates := make([]string, 0, 6)

	add := func(v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}

	for _, base := range []string{sportSlug, sportType} {
		base = strings.ToLower(strings.TrimSpace(base))
		if base == "" {
			continue
		}

		add(base)
		add(strings.ReplaceAll(base, "-", ""))
		add(strings.ReplaceAll(base, "-", " "))
	}

	return candidates
}
