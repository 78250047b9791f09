// Package config turns command-line tokens into the immutable Config that
// drives one relay invocation.
//
// The pipeline is: environment substitution (Effector), token classification
// (package command), payload parsing (ParseArguments) and finally an ordered
// fold of the resulting Arguments (Builder). Later singular values win; header
// and form-data maps merge with overwrite by key.
package config

import (
	"fmt"
	"maps"
	"path"
	"time"
)

// LogTimestampLayout formats the timestamp of logged response files
// (YYYY_MM_DD_HH_MM_SS).
const LogTimestampLayout = "2006_01_02_15_04_05"

// Builder accumulates Arguments. The zero value is not usable; use NewBuilder.
type Builder struct {
	scenario            Scenario
	requestType         RequestType
	method              Method
	url                 string
	headers             map[string]string
	body                *string
	formData            map[string]string
	writeDefaultFile    bool
	responseFilePath    string
	logResponse         bool
	alsoPrintToTerminal bool
	secure              bool
	now                 func() time.Time
}

// Option customises a Builder.
type Option func(*Builder)

// WithClock sets the clock used for logged response file names.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder returns a Builder holding the defaults: a plain REST GET request
// printed to the terminal.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		scenario:    Scenario{Kind: RequestScenario},
		requestType: Rest,
		method:      Get,
		headers:     make(map[string]string),
		formData:    make(map[string]string),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add folds one argument into the builder.
func (b *Builder) Add(arg Argument) *Builder {
	if arg != nil {
		arg.apply(b)
	}
	return b
}

// resolveResponseFile decides where the response goes. An explicit path wins;
// the default file only exists for calls of a saved request.
func (b *Builder) resolveResponseFile() string {
	if b.responseFilePath != "" {
		return b.responseFilePath
	}
	if !b.writeDefaultFile || !b.scenario.IsProject(ActionCall) {
		return ""
	}
	name := b.scenario.Project.Name
	if b.logResponse {
		return path.Join(name, fmt.Sprintf("response_%s.json", b.now().Format(LogTimestampLayout)))
	}
	return path.Join(name, "response.json")
}

// Build produces the Config. The builder can keep being used afterwards.
func (b *Builder) Build() *Config {
	printer := Printer{Target: Terminal}
	if p := b.resolveResponseFile(); p != "" {
		printer = Printer{Target: File, Path: p}
	}

	var body *string
	if b.body != nil {
		v := *b.body
		body = &v
	}

	return &Config{
		scenario:            b.scenario,
		requestType:         b.requestType,
		method:              b.method,
		url:                 b.url,
		headers:             maps.Clone(b.headers),
		body:                body,
		formData:            maps.Clone(b.formData),
		printer:             printer,
		alsoPrintToTerminal: b.alsoPrintToTerminal,
		secure:              b.secure,
	}
}

// New folds args left to right into a Config.
func New(args []Argument, opts ...Option) *Config {
	b := NewBuilder(opts...)
	for _, arg := range args {
		b.Add(arg)
	}
	return b.Build()
}

// Resolve runs the whole pipeline over the process arguments. args[0] is the
// program name. Fewer than two arguments resolve to the help scenario.
func Resolve(args []string, effector Effector, opts ...Option) (*Config, error) {
	if len(args) < 2 {
		b := NewBuilder(opts...)
		b.scenario = HelpScenario
		return b.Build(), nil
	}

	tokens := effector.ApplyToArgs(args[1:])
	arguments, err := ParseArguments(tokens)
	if err != nil {
		return nil, err
	}
	return New(arguments, opts...), nil
}

// Config is the fully reduced description of one invocation. It is never
// modified after Build; accessors return copies of its maps.
type Config struct {
	scenario            Scenario
	requestType         RequestType
	method              Method
	url                 string
	headers             map[string]string
	body                *string
	formData            map[string]string
	printer             Printer
	alsoPrintToTerminal bool
	secure              bool
}

func (c *Config) Scenario() Scenario          { return c.scenario }
func (c *Config) RequestType() RequestType    { return c.requestType }
func (c *Config) Method() Method              { return c.method }
func (c *Config) URL() string                 { return c.url }
func (c *Config) Headers() map[string]string  { return maps.Clone(c.headers) }
func (c *Config) FormData() map[string]string { return maps.Clone(c.formData) }
func (c *Config) Printer() Printer            { return c.printer }
func (c *Config) AlsoPrintToTerminal() bool   { return c.alsoPrintToTerminal }
func (c *Config) Secure() bool                { return c.secure }

// Body returns the configured body and whether one was given.
func (c *Config) Body() (string, bool) {
	if c.body == nil {
		return "", false
	}
	return *c.body, true
}
