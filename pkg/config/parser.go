package config

import (
	"fmt"
	"strings"

	"github.com/blackcoderx/relay/pkg/command"
)

// Delimiter separates the parts of key/value and triple payloads. Two colons are
// used so single colons inside URLs and header values survive.
const Delimiter = "::"

// ParseError reports a malformed payload. It aborts the whole invocation.
type ParseError struct {
	Token  string
	Flag   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed argument %q for %s: %s", e.Token, e.Flag, e.Reason)
}

// SimpleValue returns the payload unchanged; any string, including an empty
// one, is accepted.
func SimpleValue(payload string) string {
	return payload
}

// PairValue splits a payload of the form first::second.
func PairValue(payload string) (string, string, error) {
	parts := strings.Split(payload, Delimiter)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("expected key%svalue", Delimiter)
	}
	return parts[0], parts[1], nil
}

// TripleValue splits a payload of the form one::two::three.
func TripleValue(payload string) (string, string, string, error) {
	parts := strings.Split(payload, Delimiter)
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("expected one%stwo%sthree", Delimiter, Delimiter)
	}
	return parts[0], parts[1], parts[2], nil
}

type argumentParser func(payload string) (Argument, error)

func fixed(arg Argument) argumentParser {
	return func(string) (Argument, error) { return arg, nil }
}

func project(action ProjectAction) argumentParser {
	return func(payload string) (Argument, error) {
		return ProjectArg{Scenario: ProjectScenario{Action: action, Name: SimpleValue(payload)}}, nil
	}
}

var argumentParsers = map[command.Kind]argumentParser{
	command.Help:                fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionHelp}}),
	command.Version:             fixed(MiscArg{Scenario: MiscVersion}),
	command.Init:                fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionInit}}),
	command.PrintEnvAll:         fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionPrintEnvAll}}),
	command.PrintEnv:            fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionPrintEnv}}),
	command.PrintLastCall:       fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionPrintLastCall}}),
	command.TypeRest:            fixed(TypeArg{Type: Rest}),
	command.TypeWebsocket:       fixed(TypeArg{Type: Websocket}),
	command.TypeProto:           fixed(TypeArg{Type: Proto}),
	command.MethodGet:           fixed(MethodArg{Method: Get}),
	command.MethodPost:          fixed(MethodArg{Method: Post}),
	command.MethodDelete:        fixed(MethodArg{Method: Delete}),
	command.MethodPut:           fixed(MethodArg{Method: Put}),
	command.MethodPatch:         fixed(MethodArg{Method: Patch}),
	command.File:                fixed(DefaultResponseFileArg{}),
	command.LogResponse:         fixed(LogResponseArg{}),
	command.AlsoPrintToTerminal: fixed(AlsoPrintArg{}),
	command.Secure:              fixed(SecureArg{}),
	command.RemoveAuthorization: fixed(ProjectArg{Scenario: ProjectScenario{Action: ActionRemoveAuthorization}}),
	command.Uri: func(p string) (Argument, error) {
		return URIArg{URI: SimpleValue(p)}, nil
	},
	command.Body: func(p string) (Argument, error) {
		return BodyArg{Body: SimpleValue(p)}, nil
	},
	command.ResponseFile: func(p string) (Argument, error) {
		return ResponseFileArg{Path: SimpleValue(p)}, nil
	},
	command.Header: func(p string) (Argument, error) {
		key, value, err := PairValue(p)
		if err != nil {
			return nil, err
		}
		return HeaderArg{Key: key, Value: value}, nil
	},
	command.FormData: func(p string) (Argument, error) {
		key, value, err := PairValue(p)
		if err != nil {
			return nil, err
		}
		return FormDataArg{Key: key, Value: value}, nil
	},
	command.AddAuthorization: func(p string) (Argument, error) {
		return ProjectArg{Scenario: ProjectScenario{Action: ActionAddAuthorization, Token: SimpleValue(p)}}, nil
	},
	command.Save:        project(ActionSave),
	command.Call:        project(ActionCall),
	command.SaveAndCall: project(ActionSaveAndCall),
	command.Delete:      project(ActionDelete),
	command.RemoveEnv: func(p string) (Argument, error) {
		return ProjectArg{Scenario: ProjectScenario{Action: ActionRemoveEnv, Env: SimpleValue(p)}}, nil
	},
	command.SelectEnv: func(p string) (Argument, error) {
		return ProjectArg{Scenario: ProjectScenario{Action: ActionSelectEnv, Env: SimpleValue(p)}}, nil
	},
	command.RemoveEnvValue: func(p string) (Argument, error) {
		env, key, err := PairValue(p)
		if err != nil {
			return nil, err
		}
		return ProjectArg{Scenario: ProjectScenario{Action: ActionRemoveEnvValue, Env: env, Key: key}}, nil
	},
	command.AddEnv: func(p string) (Argument, error) {
		env, key, value, err := TripleValue(p)
		if err != nil {
			return nil, err
		}
		return ProjectArg{Scenario: ProjectScenario{Action: ActionAddEnv, Env: env, Key: key, Value: value}}, nil
	},
}

// ParseArgument resolves one classified command. Invalid commands yield a nil
// Argument and no error.
func ParseArgument(cmd command.Command) (Argument, error) {
	parse, ok := argumentParsers[cmd.Kind]
	if !ok {
		return nil, nil
	}
	arg, err := parse(cmd.Payload())
	if err != nil {
		return nil, &ParseError{Token: cmd.Raw, Flag: cmd.Flag(), Reason: err.Error()}
	}
	return arg, nil
}

// ParseArguments classifies and resolves tokens in order, dropping unknown ones.
// The first malformed payload stops parsing.
func ParseArguments(tokens []string) ([]Argument, error) {
	args := make([]Argument, 0, len(tokens))
	for _, cmd := range command.ClassifyAll(tokens) {
		arg, err := ParseArgument(cmd)
		if err != nil {
			return nil, err
		}
		if arg != nil {
			args = append(args, arg)
		}
	}
	return args, nil
}
