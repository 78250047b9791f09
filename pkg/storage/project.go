// Package storage persists the relay project document and the saved request
// directories that live next to it.
package storage

import (
	"maps"
	"slices"

	"github.com/blackcoderx/relay/pkg/config"
)

// DefaultAuthorizationKey holds the authorization used when no environment is
// selected.
const DefaultAuthorizationKey = "@default"

// Environment is a named set of substitution values.
type Environment struct {
	Values map[string]string `json:"values"`
}

// Project is the document stored in .relay/project.json.
type Project struct {
	Version              string                  `json:"version"`
	Name                 string                  `json:"name"`
	SelectedEnvironment  string                  `json:"selected_environment,omitempty"`
	Environments         map[string]*Environment `json:"environments"`
	Authorization        map[string]string       `json:"authorization"`
	LastCallResponsePath string                  `json:"last_call_response_path,omitempty"`
}

// NewProject returns an empty project stamped with the current version.
func NewProject(name string) *Project {
	return &Project{
		Version:       CurrentVersion.String(),
		Name:          name,
		Environments:  make(map[string]*Environment),
		Authorization: make(map[string]string),
	}
}

// normalize fills nil maps left by hand-edited documents.
func (p *Project) normalize() {
	if p.Environments == nil {
		p.Environments = make(map[string]*Environment)
	}
	for name, env := range p.Environments {
		if env == nil {
			env = &Environment{}
			p.Environments[name] = env
		}
		if env.Values == nil {
			env.Values = make(map[string]string)
		}
	}
	if p.Authorization == nil {
		p.Authorization = make(map[string]string)
	}
}

// SetEnvValue upserts key in env, creating the environment when needed.
func (p *Project) SetEnvValue(env, key, value string) {
	e, ok := p.Environments[env]
	if !ok {
		e = &Environment{Values: make(map[string]string)}
		p.Environments[env] = e
	}
	e.Values[key] = value
}

// RemoveEnvValue deletes key from env. Unknown names are ignored.
func (p *Project) RemoveEnvValue(env, key string) {
	if e, ok := p.Environments[env]; ok {
		delete(e.Values, key)
	}
}

// RemoveEnv deletes env. Removing the selected environment clears the
// selection.
func (p *Project) RemoveEnv(env string) {
	delete(p.Environments, env)
	if p.SelectedEnvironment == env {
		p.SelectedEnvironment = ""
	}
}

// SelectEnv makes env the active environment. The selection is left alone
// when env does not exist.
func (p *Project) SelectEnv(env string) error {
	if _, ok := p.Environments[env]; !ok {
		return &EnvironmentNotFoundError{Name: env}
	}
	p.SelectedEnvironment = env
	return nil
}

// Selected returns the active environment.
func (p *Project) Selected() (string, *Environment, bool) {
	if p.SelectedEnvironment == "" {
		return "", nil, false
	}
	env, ok := p.Environments[p.SelectedEnvironment]
	if !ok {
		return "", nil, false
	}
	return p.SelectedEnvironment, env, true
}

// EnvironmentNames returns the environment names in sorted order.
func (p *Project) EnvironmentNames() []string {
	return slices.Sorted(maps.Keys(p.Environments))
}

// Effector substitutes the values of the active environment.
func (p *Project) Effector() config.Effector {
	_, env, ok := p.Selected()
	if !ok {
		return config.Effector{}
	}
	return config.NewEffector(env.Values)
}

// AuthorizationKey is the key authorization is stored under: the selected
// environment or DefaultAuthorizationKey.
func (p *Project) AuthorizationKey() string {
	if p.SelectedEnvironment != "" {
		return p.SelectedEnvironment
	}
	return DefaultAuthorizationKey
}

func (p *Project) SetAuthorization(token string) {
	p.Authorization[p.AuthorizationKey()] = token
}

func (p *Project) RemoveAuthorization() {
	delete(p.Authorization, p.AuthorizationKey())
}

// ActiveAuthorization returns the token stored under AuthorizationKey.
func (p *Project) ActiveAuthorization() (string, bool) {
	token, ok := p.Authorization[p.AuthorizationKey()]
	return token, ok
}
