package layout

import "strings"

// Measurer returns the printed width of s in millimetres for font f.
type Measurer interface {
	StringWidth(f Font, s string) float64
}

// Wrap splits text into printable lines no wider than width. Explicit line
// breaks are honoured first; each resulting paragraph is then word-wrapped
// on its own, so a typed line break always starts a new line and an empty
// paragraph yields an empty line. A word wider than width is broken between
// characters.
func Wrap(m Measurer, f Font, text string, width float64) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, f, para, width)...)
	}
	return lines
}

func wrapParagraph(m Measurer, f Font, para string, width float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.StringWidth(f, candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if m.StringWidth(f, word) <= width {
			current = word
			continue
		}
		chunks := breakWord(m, f, word, width)
		lines = append(lines, chunks[:len(chunks)-1]...)
		current = chunks[len(chunks)-1]
	}
	return append(lines, current)
}

// breakWord cuts word into pieces that fit width, at least one rune each.
func breakWord(m Measurer, f Font, word string, width float64) []string {
	var chunks []string
	var piece []rune
	for _, r := range word {
		next := append(piece, r)
		if len(piece) > 0 && m.StringWidth(f, string(next)) > width {
			chunks = append(chunks, string(piece))
			piece = []rune{r}
			continue
		}
		piece = next
	}
	return append(chunks, string(piece))
}
