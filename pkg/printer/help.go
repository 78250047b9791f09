package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/blackcoderx/relay/pkg/command"
)

// RenderHelp writes the notes and the flag listing.
func RenderHelp(w io.Writer, notes []string, rows []command.UsageRow) error {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("relay - send, save and replay HTTP requests"))
	sb.WriteString("\n\n")
	for _, note := range notes {
		sb.WriteString(NoteStyle.Render(note))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(&sb, "  %s\n      %s\n", FlagStyle.Render(row.Flags), row.Description)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
