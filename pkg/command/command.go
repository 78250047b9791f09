// Package command classifies raw command-line tokens into the closed set of
// commands relay understands.
//
// Classification is table driven: exact literals are checked first, then the
// prefixed flags in the order they are declared. Every token maps to exactly one
// Command; anything unrecognised becomes Invalid and is dropped later.
package command

import "strings"

// Kind identifies a recognised command.
type Kind int

const (
	Invalid Kind = iota
	Help
	Version
	Init
	PrintEnvAll
	PrintEnv
	PrintLastCall
	TypeRest
	TypeWebsocket
	TypeProto
	MethodGet
	MethodPost
	MethodDelete
	MethodPut
	MethodPatch
	File
	LogResponse
	AlsoPrintToTerminal
	Uri
	Header
	Body
	FormData
	ResponseFile
	Save
	Call
	SaveAndCall
	Delete
	RemoveEnv
	AddEnv
	RemoveEnvValue
	SelectEnv
	AddAuthorization
	RemoveAuthorization
	Secure
)

var kindNames = map[Kind]string{
	Invalid:             "invalid",
	Help:                "help",
	Version:             "version",
	Init:                "init",
	PrintEnvAll:         "print-env-all",
	PrintEnv:            "print-env",
	PrintLastCall:       "print",
	TypeRest:            "type-rest",
	TypeWebsocket:       "type-websocket",
	TypeProto:           "type-proto",
	MethodGet:           "method-get",
	MethodPost:          "method-post",
	MethodDelete:        "method-delete",
	MethodPut:           "method-put",
	MethodPatch:         "method-patch",
	File:                "file",
	LogResponse:         "log",
	AlsoPrintToTerminal: "print-to-terminal",
	Uri:                 "uri",
	Header:              "header",
	Body:                "body",
	FormData:            "form-data",
	ResponseFile:        "response-file",
	Save:                "save",
	Call:                "call",
	SaveAndCall:         "save-and-call",
	Delete:              "delete",
	RemoveEnv:           "env-delete",
	AddEnv:              "env",
	RemoveEnvValue:      "env-delete-value",
	SelectEnv:           "select-env",
	AddAuthorization:    "authorization",
	RemoveAuthorization: "remove-authorization",
	Secure:              "secure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Form records which spelling of a flag matched.
type Form int

const (
	Short Form = iota
	Long
)

func (f Form) String() string {
	if f == Long {
		return "long"
	}
	return "short"
}

// Command is the classification of a single token.
type Command struct {
	Kind Kind
	Raw  string
	Form Form
}

// Payload returns the part of the token after the matched flag prefix.
// Commands matched by an exact literal have no payload.
func (c Command) Payload() string {
	p, ok := prefixFor(c.Kind, c.Form)
	if !ok {
		return ""
	}
	return c.Raw[len(p):]
}

// Flag returns the flag spelling that matched, without the payload.
func (c Command) Flag() string {
	if p, ok := prefixFor(c.Kind, c.Form); ok {
		return p
	}
	return c.Raw
}

type literal struct {
	kind   Kind
	tokens []string
}

type prefixed struct {
	kind  Kind
	short string
	long  string
}

var literals = []literal{
	{Help, []string{"-h", "--help"}},
	{Version, []string{"-v", "--version"}},
	{Init, []string{"init"}},
	{PrintEnvAll, []string{"print-env-all"}},
	{PrintEnv, []string{"print-env"}},
	{PrintLastCall, []string{"print"}},
	{TypeRest, []string{"-t=REST", "--type=REST"}},
	{TypeWebsocket, []string{"-t=WEBSOCKET", "--type=WEBSOCKET"}},
	{TypeProto, []string{"-t=PROTO", "--type=PROTO"}},
	{MethodGet, []string{"-m=GET", "--method=GET"}},
	{MethodPost, []string{"-m=POST", "--method=POST"}},
	{MethodDelete, []string{"-m=DELETE", "--method=DELETE"}},
	{MethodPut, []string{"-m=PUT", "--method=PUT"}},
	{MethodPatch, []string{"-m=PATCH", "--method=PATCH"}},
	{File, []string{"-f", "--file"}},
	{LogResponse, []string{"-l", "--log"}},
	{AlsoPrintToTerminal, []string{"-p", "--print"}},
	{Secure, []string{"-sec", "--secure"}},
	{RemoveAuthorization, []string{"-r-auth", "--remove-authorization"}},
}

// prefixes is evaluated top to bottom; the first match wins.
var prefixes = []prefixed{
	{AddAuthorization, "-auth=", "--authorization="},
	{Uri, "-u=", "--uri="},
	{Header, "-h=", "--header="},
	{Body, "-b=", "--body="},
	{FormData, "-fd=", "--form-data="},
	{ResponseFile, "-rf=", "--response-file="},
	{Save, "-s=", "--save="},
	{Call, "-c=", "--call="},
	{SaveAndCall, "-sc=", "--save-and-call="},
	{Delete, "-d=", "--delete="},
	{RemoveEnv, "-ed=", "--env-delete="},
	{AddEnv, "-e=", "--env="},
	{RemoveEnvValue, "-edv=", "--env-delete-value="},
	{SelectEnv, "-se=", "--select-env="},
}

var exact = func() map[string]Kind {
	m := make(map[string]Kind)
	for _, l := range literals {
		for _, tok := range l.tokens {
			m[tok] = l.kind
		}
	}
	return m
}()

func prefixFor(kind Kind, form Form) (string, bool) {
	for _, p := range prefixes {
		if p.kind != kind {
			continue
		}
		if form == Long {
			return p.long, true
		}
		return p.short, true
	}
	return "", false
}

// Classify maps one token to its Command.
func Classify(token string) Command {
	if kind, ok := exact[token]; ok {
		return Command{Kind: kind, Raw: token}
	}

	for _, p := range prefixes {
		switch {
		case strings.HasPrefix(token, p.short):
			return Command{Kind: p.kind, Raw: token, Form: Short}
		case strings.HasPrefix(token, p.long):
			return Command{Kind: p.kind, Raw: token, Form: Long}
		}
	}

	return Command{Kind: Invalid, Raw: token}
}

// ClassifyAll classifies every token in order.
func ClassifyAll(tokens []string) []Command {
	cmds := make([]Command, 0, len(tokens))
	for _, tok := range tokens {
		cmds = append(cmds, Classify(tok))
	}
	return cmds
}
