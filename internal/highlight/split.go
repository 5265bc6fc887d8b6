package highlight

import "strings"

// Split breaks text into chunks of at least maxLines lines each,
// cutting only at the next occurrence of sep once the limit is
// reached. The separator stays at the head of the following chunk.
// maxLines <= 0 or an empty sep returns the text whole.
func Split(text string, maxLines int, sep string) []string {
	if maxLines <= 0 || sep == "" {
		return []string{text}
	}

	var chunks []string
	start := 0
	lines := 0
	i := 0
	for i < len(text) {
		j := strings.IndexByte(text[i:], '\n')
		if j < 0 {
			break
		}
		i += j + 1
		lines++
		if lines < maxLines {
			continue
		}
		cut := strings.Index(text[i:], sep)
		if cut < 0 {
			break
		}
		end := i + cut
		chunks = append(chunks, text[start:end])
		start = end
		i = end + len(sep)
		lines = 0
	}
	return append(chunks, text[start:])
}
