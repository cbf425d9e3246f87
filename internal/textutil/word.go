// internal/textutil/word.go
package textutil

import "unicode"

// A word is a maximal run of characters in one of two classes, ASCII
// punctuation or "anything else except whitespace", bounded by
// whitespace or a class change.

// isASCIIPunct matches the ASCII punctuation class: printable ASCII
// that is neither a letter, a digit, nor a space.
func isASCIIPunct(r rune) bool {
	switch {
	case r < '!' || r > '~':
		return false
	case r >= '0' && r <= '9':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= 'a' && r <= 'z':
		return false
	}
	return true
}

// NextWord scans forward from rune column col: it skips leading
// whitespace, then skips the run of the class found there, and returns
// the column where that run ends. It reports false when the end of the
// line is reached without another boundary.
func NextWord(line string, col int) (int, bool) {
	runes := []rune(line)
	if col < 0 {
		col = 0
	}

	i := col
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return 0, false
	}

	if isASCIIPunct(runes[i]) {
		for i < len(runes) && isASCIIPunct(runes[i]) {
			i++
		}
	} else {
		for i < len(runes) && !isASCIIPunct(runes[i]) && !unicode.IsSpace(runes[i]) {
			i++
		}
	}
	if i >= len(runes) {
		return 0, false
	}
	return i, true
}

// PrevWord is the mirror of NextWord, scanning backward from rune
// column col. It returns the column where the run begins, or false
// when the beginning of the line is reached without a boundary.
func PrevWord(line string, col int) (int, bool) {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}

	i := col - 1
	for i >= 0 && unicode.IsSpace(runes[i]) {
		i--
	}
	if i < 0 {
		return 0, false
	}

	if isASCIIPunct(runes[i]) {
		for i >= 0 && isASCIIPunct(runes[i]) {
			i--
		}
	} else {
		for i >= 0 && !isASCIIPunct(runes[i]) && !unicode.IsSpace(runes[i]) {
			i--
		}
	}
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}
