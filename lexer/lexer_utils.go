/*
File    : mhando/lexer/lexer_utils.go
*/
package lexer

import "strconv"

// parseLeadingFloat parses text as a double, tolerating a second (and
// later) '.' by truncating at it — see REDESIGN FLAG (a) in spec.md §9.
// strconv.ParseFloat rejects "1.2.3" outright, so on failure we retry
// with everything after the second dot dropped.
func parseLeadingFloat(text string) float64 {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v
	}
	dots := 0
	cut := len(text)
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			dots++
			if dots == 2 {
				cut = i
				break
			}
		}
	}
	v, _ := strconv.ParseFloat(text[:cut], 64)
	return v
}
