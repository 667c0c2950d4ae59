package compare

import (
	"strconv"
	"strings"
)

// RLE run-length encodes text as character-plus-decimal-count pairs,
// e.g. "AAAB" becomes "A3B1".  It exists purely as a third codec for
// the report table; its output is not decoded anywhere.
func RLE(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	var sb strings.Builder
	count := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			count++
			continue
		}
		sb.WriteRune(runes[i-1])
		sb.WriteString(strconv.Itoa(count))
		count = 1
	}
	sb.WriteRune(runes[len(runes)-1])
	sb.WriteString(strconv.Itoa(count))
	return sb.String()
}
