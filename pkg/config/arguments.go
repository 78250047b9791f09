package config

// Argument is the resolved form of one recognised token. Arguments are folded
// into a Config by Builder in input order.
type Argument interface {
	apply(b *Builder)
}

type (
	// TypeArg sets the request type.
	TypeArg struct{ Type RequestType }
	// MethodArg sets the HTTP method.
	MethodArg struct{ Method Method }
	// URIArg sets the target URL.
	URIArg struct{ URI string }
	// HeaderArg sets one header; later keys overwrite earlier ones.
	HeaderArg struct{ Key, Value string }
	// BodyArg sets the raw body text.
	BodyArg struct{ Body string }
	// FormDataArg sets one form field; later keys overwrite earlier ones.
	FormDataArg struct{ Key, Value string }
	// ResponseFileArg names an explicit response file.
	ResponseFileArg struct{ Path string }
	// DefaultResponseFileArg asks for the default response file of a call.
	DefaultResponseFileArg struct{}
	// LogResponseArg timestamps the default response file.
	LogResponseArg struct{}
	// AlsoPrintArg echoes file output to the terminal.
	AlsoPrintArg struct{}
	// SecureArg sends the stored authorization.
	SecureArg struct{}
	// ProjectArg selects a project scenario.
	ProjectArg struct{ Scenario ProjectScenario }
	// MiscArg selects a miscellaneous scenario.
	MiscArg struct{ Scenario MiscScenario }
)

func (a TypeArg) apply(b *Builder)   { b.requestType = a.Type }
func (a MethodArg) apply(b *Builder) { b.method = a.Method }
func (a URIArg) apply(b *Builder)    { b.url = a.URI }
func (a HeaderArg) apply(b *Builder) { b.headers[a.Key] = a.Value }

func (a BodyArg) apply(b *Builder) {
	body := a.Body
	b.body = &body
}

func (a FormDataArg) apply(b *Builder)            { b.formData[a.Key] = a.Value }
func (a ResponseFileArg) apply(b *Builder)        { b.responseFilePath = a.Path }
func (a DefaultResponseFileArg) apply(b *Builder) { b.writeDefaultFile = true }
func (a LogResponseArg) apply(b *Builder)         { b.logResponse = true }
func (a AlsoPrintArg) apply(b *Builder)           { b.alsoPrintToTerminal = true }
func (a SecureArg) apply(b *Builder)              { b.secure = true }

func (a ProjectArg) apply(b *Builder) {
	b.scenario = Scenario{Kind: ProjectScenarioKind, Project: a.Scenario}
}

func (a MiscArg) apply(b *Builder) {
	b.scenario = Scenario{Kind: MiscScenarioKind, Misc: a.Scenario}
}
