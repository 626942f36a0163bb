package output

import (
	"fmt"
	"strings"
)

// FormatHeader returns a markdown heading of the given level.
func FormatHeader(level int, text string) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue returns a bold markdown key followed by its value.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("**%s:** %s", key, value)
}

// FormatLink returns a markdown link.
func FormatLink(label, href string) string {
	return fmt.Sprintf("[%s](%s)", escapeLinkText(label), href)
}

// FormatCodeBlock returns a fenced code block.
func FormatCodeBlock(lang, code string) string {
	return "```" + lang + "\n" + strings.TrimRight(code, "\n") + "\n```"
}

func escapeLinkText(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}
