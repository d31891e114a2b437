package utils

import "strings"

const wordsPerMinute = 200

// ReadingTime estimates reading time in whole minutes from word count,
// never less than one minute.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
