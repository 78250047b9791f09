package printer

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// HighlightJSON renders already formatted JSON as a highlighted code block.
// On any rendering failure the input is returned unchanged.
func HighlightJSON(input string) string {
	var sb strings.Builder
	sb.WriteString("```json\n")
	sb.WriteString(strings.TrimRight(input, "\n"))
	sb.WriteString("\n```")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return input
	}

	out, err := renderer.Render(sb.String())
	if err != nil {
		return input
	}
	return strings.TrimSpace(out)
}
