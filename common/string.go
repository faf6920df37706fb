package common

import "strings"

// WrapString breaks s into lines no longer than width runes, splitting at the
// last space before the limit when there is one. Existing line breaks are kept.
func WrapString(s string, width int) string {
	if width <= 0 {
		return s
	}

	paragraphs := strings.Split(s, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wrapLine(p, width)
	}
	return strings.Join(paragraphs, "\n")
}

func wrapLine(s string, width int) string {
	var lines []string
	runes := []rune(strings.TrimRight(s, " "))
	for len(runes) > width {
		splitAt := width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, strings.TrimRight(string(runes[:splitAt]), " "))
		runes = []rune(strings.TrimLeft(string(runes[splitAt:]), " "))
	}
	if len(runes) > 0 || len(lines) == 0 {
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}
