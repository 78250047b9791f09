package config

import (
	"maps"
	"strings"
)

// Effector substitutes {key} placeholders with the values of one environment.
// A nil or empty Effector passes text through unchanged.
type Effector struct {
	values map[string]string
}

// NewEffector returns an Effector over values. The map is copied.
func NewEffector(values map[string]string) Effector {
	if len(values) == 0 {
		return Effector{}
	}
	return Effector{values: maps.Clone(values)}
}

// Empty reports whether the Effector has no values to apply.
func (e Effector) Empty() bool {
	return len(e.values) == 0
}

// Apply replaces every {key} in text. Each key is applied once over the whole
// text, in map iteration order.
func (e Effector) Apply(text string) string {
	for key, value := range e.values {
		text = strings.ReplaceAll(text, "{"+key+"}", value)
	}
	return text
}

// ApplyToArgs returns a new slice with Apply run over every token.
func (e Effector) ApplyToArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = e.Apply(arg)
	}
	return out
}
