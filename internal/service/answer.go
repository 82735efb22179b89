package service

import "strings"

// matchAnswer accepts typed if it equals one of the "/"-separated alternatives of
// expected, ignoring case and surrounding whitespace.
func matchAnswer(expected, typed string) bool {
	typed = strings.ToLower(strings.TrimSpace(typed))
	for _, alt := range strings.Split(strings.ToLower(expected), "/") {
		if strings.TrimSpace(alt) == typed {
			return true
		}
	}
	return false
}
