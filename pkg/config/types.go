package config

import "fmt"

// RequestType selects which request implementation handles a call.
type RequestType int

const (
	Rest RequestType = iota
	Websocket
	Proto
)

var requestTypeNames = [...]string{
	Rest:      "REST",
	Websocket: "WEBSOCKET",
	Proto:     "PROTO",
}

// String returns the marker spelling of the type.
func (t RequestType) String() string {
	if int(t) < len(requestTypeNames) {
		return requestTypeNames[t]
	}
	return fmt.Sprintf("RequestType(%d)", int(t))
}

// ParseRequestType reads a marker spelling back into a RequestType.
func ParseRequestType(s string) (RequestType, error) {
	for i, name := range requestTypeNames {
		if name == s {
			return RequestType(i), nil
		}
	}
	return Rest, fmt.Errorf("invalid request type marker %q", s)
}

// Method is one of the supported HTTP verbs.
type Method string

const (
	Get    Method = "GET"
	Post   Method = "POST"
	Delete Method = "DELETE"
	Put    Method = "PUT"
	Patch  Method = "PATCH"
)

// Valid reports whether m is a supported verb.
func (m Method) Valid() bool {
	switch m {
	case Get, Post, Delete, Put, Patch:
		return true
	}
	return false
}

// PrinterTarget tells the executor where a response goes.
type PrinterTarget int

const (
	Terminal PrinterTarget = iota
	File
)

func (p PrinterTarget) String() string {
	if p == File {
		return "file"
	}
	return "terminal"
}

// Printer is the resolved response destination. Path is set only for File.
type Printer struct {
	Target PrinterTarget
	Path   string
}

// ScenarioKind is the top-level action of one invocation.
type ScenarioKind int

const (
	RequestScenario ScenarioKind = iota
	ProjectScenarioKind
	MiscScenarioKind
)

// ProjectAction enumerates the project sub-scenarios.
type ProjectAction int

const (
	ActionHelp ProjectAction = iota
	ActionInit
	ActionCall
	ActionSave
	ActionSaveAndCall
	ActionDelete
	ActionPrintLastCall
	ActionAddEnv
	ActionRemoveEnvValue
	ActionRemoveEnv
	ActionSelectEnv
	ActionPrintEnv
	ActionPrintEnvAll
	ActionAddAuthorization
	ActionRemoveAuthorization
)

var projectActionNames = [...]string{
	ActionHelp:                "help",
	ActionInit:                "init",
	ActionCall:                "call",
	ActionSave:                "save",
	ActionSaveAndCall:         "save-and-call",
	ActionDelete:              "delete",
	ActionPrintLastCall:       "print",
	ActionAddEnv:              "add-env",
	ActionRemoveEnvValue:      "remove-env-value",
	ActionRemoveEnv:           "remove-env",
	ActionSelectEnv:           "select-env",
	ActionPrintEnv:            "print-env",
	ActionPrintEnvAll:         "print-env-all",
	ActionAddAuthorization:    "add-authorization",
	ActionRemoveAuthorization: "remove-authorization",
}

func (a ProjectAction) String() string {
	if int(a) < len(projectActionNames) {
		return projectActionNames[a]
	}
	return fmt.Sprintf("ProjectAction(%d)", int(a))
}

// ProjectScenario carries the action and whichever operands it needs.
//
//	Call/Save/SaveAndCall/Delete   Name
//	AddEnv                         Env, Key, Value
//	RemoveEnvValue                 Env, Key
//	RemoveEnv/SelectEnv            Env
//	AddAuthorization               Token
type ProjectScenario struct {
	Action ProjectAction
	Name   string
	Env    string
	Key    string
	Value  string
	Token  string
}

// MiscScenario enumerates actions that need neither a request nor a project.
type MiscScenario int

const (
	MiscVersion MiscScenario = iota
)

// Scenario selects what one invocation does.
type Scenario struct {
	Kind    ScenarioKind
	Project ProjectScenario
	Misc    MiscScenario
}

// IsProject reports whether s is the given project action.
func (s Scenario) IsProject(action ProjectAction) bool {
	return s.Kind == ProjectScenarioKind && s.Project.Action == action
}

func (s Scenario) String() string {
	switch s.Kind {
	case ProjectScenarioKind:
		return "project:" + s.Project.Action.String()
	case MiscScenarioKind:
		return "misc:version"
	default:
		return "request"
	}
}

// HelpScenario is used when no actionable tokens are given.
var HelpScenario = Scenario{Kind: ProjectScenarioKind, Project: ProjectScenario{Action: ActionHelp}}
