package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffector_Apply(t *testing.T) {
	e := NewEffector(map[string]string{
		"base_uri": "https://api.example.com",
		"token":    "abc123",
	})

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single placeholder", in: "-u={base_uri}/path", want: "-u=https://api.example.com/path"},
		{name: "repeated placeholder", in: "{token}-{token}", want: "abc123-abc123"},
		{name: "two keys", in: "{base_uri}?t={token}", want: "https://api.example.com?t=abc123"},
		{name: "unknown key kept", in: "{missing}", want: "{missing}"},
		{name: "double braces are not special", in: "{{token}}", want: "{abc123}"},
		{name: "no placeholders", in: "-m=POST", want: "-m=POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Apply(tt.in))
		})
	}
}

func TestEffector_EmptyPassesThrough(t *testing.T) {
	var zero Effector
	assert.True(t, zero.Empty())
	assert.Equal(t, "{base_uri}", zero.Apply("{base_uri}"))
	assert.True(t, NewEffector(nil).Empty())
}

func TestEffector_ApplyToArgsDoesNotMutateInput(t *testing.T) {
	args := []string{"-u={host}", "-m=GET"}
	e := NewEffector(map[string]string{"host": "localhost"})

	out := e.ApplyToArgs(args)

	assert.Equal(t, []string{"-u=localhost", "-m=GET"}, out)
	assert.Equal(t, "-u={host}", args[0])
}

func TestNewEffector_CopiesValues(t *testing.T) {
	values := map[string]string{"k": "v1"}
	e := NewEffector(values)
	values["k"] = "v2"
	assert.Equal(t, "v1", e.Apply("{k}"))
}
