package interview

import "strings"

// ExtractJSON carves the JSON payload out of a raw model response. Models wrap
// output in markdown fences or surround it with prose despite instructions, so
// fences are stripped first, then the span from the first '{' or '[' (whichever
// comes first) to the last matching '}' or ']' is sliced out.
//
// This is a recovery heuristic, not a parser: the returned string still has to
// survive json.Unmarshal. ok is false when no plausible span exists.
func ExtractJSON(raw string) (string, bool) {
	text := raw
	for _, fence := range []string{"```json", "```JSON", "```Json", "```"} {
		text = strings.ReplaceAll(text, fence, "")
	}
	text = strings.TrimSpace(text)

	firstBrace := strings.Index(text, "{")
	firstBracket := strings.Index(text, "[")

	start, end := -1, -1
	if firstBrace != -1 && (firstBracket == -1 || firstBrace < firstBracket) {
		start = firstBrace
		end = strings.LastIndex(text, "}")
	} else if firstBracket != -1 {
		start = firstBracket
		end = strings.LastIndex(text, "]")
	}

	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
