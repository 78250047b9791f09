package printer

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// RenderEnvironment writes one environment as YAML under a heading.
func RenderEnvironment(w io.Writer, name string, values map[string]string, selected bool) error {
	var sb strings.Builder
	heading := name + ":"
	if selected {
		sb.WriteString(SelectedStyle.Render(heading + " (selected)"))
	} else {
		sb.WriteString(TitleStyle.Render(heading))
	}
	sb.WriteString("\n")

	if len(values) == 0 {
		sb.WriteString(NoteStyle.Render("  (no values)"))
		sb.WriteString("\n")
	} else {
		data, err := yaml.Marshal(values)
		if err != nil {
			return fmt.Errorf("failed to render environment %s: %w", name, err)
		}
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			sb.WriteString("  ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderEnvironments writes every environment in name order.
func RenderEnvironments(w io.Writer, envs map[string]map[string]string, selected string) error {
	if len(envs) == 0 {
		_, err := io.WriteString(w, NoteStyle.Render("no environments, add one with -e=(env::key::value)")+"\n")
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(envs)) {
		if err := RenderEnvironment(w, name, envs[name], name == selected); err != nil {
			return err
		}
	}
	return nil
}
