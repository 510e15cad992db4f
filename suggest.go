package liniarote

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestible are the names worth suggesting for a mistyped constant. The
// single-rune symbol aliases are excluded; they match nearly everything.
var suggestible = func() []string {
	var names []string
	for k := range reserved {
		if len([]rune(k)) > 1 {
			names = append(names, k)
		}
	}
	names = append(names, Builtins()...)
	sortstrs(names)
	return names
}()

// Suggest returns the reserved spelling or built-in constant that name most
// likely misspells, or the empty string if none is close. A name that is
// itself reserved or built in has no suggestion.
func Suggest(name string) string {
	if name == "" {
		return ""
	}
	if Reserved(name) {
		return ""
	}
	if _, ok := builtins[name]; ok {
		return ""
	}
	if len([]rune(name)) > 1 {
		ranks := fuzzy.RankFindFold(name, suggestible)
		if len(ranks) > 0 {
			sort.Sort(ranks)
			return ranks[0].Target
		}
	}
	best, dist := "", 2
	for _, c := range suggestible {
		if d := fuzzy.LevenshteinDistance(name, c); d <= dist && d < len([]rune(c)) {
			if d < dist || best == "" {
				best, dist = c, d
			}
		}
	}
	return best
}
