package utils

import "strings"

// FindIndex returns the position of item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// SplitCommand separates the first word of a console line from the rest,
// trimming both.
func SplitCommand(line string) (string, string) {
	key, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	return key, strings.TrimSpace(arg)
}
