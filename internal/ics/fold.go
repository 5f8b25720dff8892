package ics

import "strings"

// LineLength is the maximum physical line length recommended by RFC 5545.
const LineLength = 75

// EscapeAndFold escapes text for use as an iCalendar property value and
// folds it into physical lines. Backslashes are escaped first, then
// newlines become the literal two-character sequence \n. The first physical
// line holds LineLength characters including the property prefix; each
// continuation line starts with a single space and holds up to
// LineLength-1 further characters.
func EscapeAndFold(text, prefix string) string {
	escaped := strings.ReplaceAll(text, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)

	full := []rune(prefix + escaped)
	if len(full) <= LineLength {
		return string(full)
	}

	lines := []string{string(full[:LineLength])}
	remaining := full[LineLength:]
	for len(remaining) > 0 {
		n := LineLength - 1
		if len(remaining) < n {
			n = len(remaining)
		}
		lines = append(lines, " "+string(remaining[:n]))
		remaining = remaining[n:]
	}
	return strings.Join(lines, "\r\n")
}

// Unfold reverses folding: continuation lines lose their leading space and
// are concatenated back onto the logical line.
func Unfold(folded string) string {
	lines := strings.Split(folded, "\r\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 && strings.HasPrefix(line, " ") {
			b.WriteString(line[1:])
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
