package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"
)

// DefaultRenderWidth is the word-wrap width for rendered reports.
const DefaultRenderWidth = 80

// ToMarkdown converts a plain-text report into markdown: the first line
// becomes the title, upper-case lines ending in a colon become sections and
// bullet or checkbox lines become list items.
func ToMarkdown(report string) string {
	lines := strings.Split(strings.TrimSpace(report), "\n")
	var b strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case i == 0:
			b.WriteString("# " + trimmed + "\n")
		case trimmed == "":
			b.WriteString("\n")
		case isSectionHeading(trimmed):
			b.WriteString("## " + strings.TrimSuffix(trimmed, ":") + "\n")
		case strings.HasPrefix(trimmed, "• "), strings.HasPrefix(trimmed, "- "):
			b.WriteString("- " + strings.TrimSpace(trimmed[strings.Index(trimmed, " ")+1:]) + "\n")
		case strings.HasPrefix(trimmed, "☑ "):
			b.WriteString("- [x] " + strings.TrimPrefix(trimmed, "☑ ") + "\n")
		default:
			// Hard line break keeps key: value lines apart.
			b.WriteString(trimmed + "  \n")
		}
	}
	return b.String()
}

func isSectionHeading(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	hasLetter := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// RenderMarkdown renders md for a terminal, wrapping at width (or
// DefaultRenderWidth when width is not positive).
func RenderMarkdown(md string, width int) (string, error) {
	if width <= 0 {
		width = DefaultRenderWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
