package highlight

import "strings"

// DefaultClasses is the recognized-class list used when a language
// binding does not configure its own, ordered so a tie in matched-part
// count resolves to whichever is declared first (§4.E).
var DefaultClasses = []string{
	"comment",
	"string",
	"number",
	"constant.builtin",
	"keyword",
	"type",
	"function.method.call",
	"function.method",
	"function.call",
	"function",
	"variable.parameter",
	"variable",
}

// resolveClass implements the longest-prefix-of-parts match: a
// recognized class "X.Y" matches a capture "A.B.C" iff every part of
// the class name appears somewhere in the capture name's parts. The
// recognized class with the most matching parts wins; ties go to
// whichever is earlier in classes.
func resolveClass(captureName string, classes []string) (string, bool) {
	captureParts := partSet(captureName)

	bestClass := ""
	bestScore := -1
	for _, class := range classes {
		classParts := strings.Split(class, ".")
		score := 0
		matched := true
		for _, p := range classParts {
			if _, ok := captureParts[p]; ok {
				score++
			} else {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestClass = class
		}
	}
	if bestScore < 0 {
		return "", false
	}
	return bestClass, true
}

func partSet(name string) map[string]struct{} {
	parts := strings.Split(name, ".")
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}
