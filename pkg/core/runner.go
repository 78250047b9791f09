// Package core wires argument resolution, the project store, request
// dispatch and output together for one relay invocation.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/blackcoderx/relay/pkg/command"
	"github.com/blackcoderx/relay/pkg/config"
	"github.com/blackcoderx/relay/pkg/printer"
	"github.com/blackcoderx/relay/pkg/request"
	"github.com/blackcoderx/relay/pkg/storage"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("relay version %s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

// Runner executes one invocation at a time against a project root.
type Runner struct {
	store     *storage.Store
	client    *request.Client
	prompter  Prompter
	stdout    io.Writer
	stderr    io.Writer
	logger    *slog.Logger
	highlight bool
	build     BuildInfo
	now       func() time.Time
}

type RunnerOption func(*Runner)

func WithClient(c *request.Client) RunnerOption {
	return func(r *Runner) { r.client = c }
}

func WithPrompter(p Prompter) RunnerOption {
	return func(r *Runner) { r.prompter = p }
}

func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithHighlight turns on syntax highlighting of JSON printed to stdout.
func WithHighlight(on bool) RunnerOption {
	return func(r *Runner) { r.highlight = on }
}

func WithBuildInfo(b BuildInfo) RunnerOption {
	return func(r *Runner) { r.build = b }
}

// WithClock sets the clock used to name logged response files.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// NewRunner returns a Runner over store.
func NewRunner(store *storage.Store, opts ...RunnerOption) *Runner {
	r := &Runner{
		store:  store,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: slog.New(slog.DiscardHandler),
		build:  BuildInfo{Version: "dev", Commit: "none", Date: "unknown"},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = request.NewClient(request.WithLogger(r.logger))
	}
	if r.prompter == nil {
		r.prompter = LinePrompter{In: os.Stdin, Out: r.stdout}
	}
	return r
}

// Run resolves args (args[0] is the program name) and executes the resulting
// scenario.
func (r *Runner) Run(ctx context.Context, args []string) error {
	effector, err := r.store.Effector()
	if err != nil {
		return err
	}
	if !effector.Empty() {
		r.logger.Debug("applying environment to arguments")
	}

	cfg, err := config.Resolve(args, effector, config.WithClock(r.now))
	if err != nil {
		return err
	}
	r.logger.Debug("resolved configuration",
		"scenario", cfg.Scenario().String(),
		"type", cfg.RequestType().String(),
		"method", string(cfg.Method()),
		"printer", cfg.Printer().Target.String())

	scenario := cfg.Scenario()
	switch scenario.Kind {
	case config.MiscScenarioKind:
		_, err := fmt.Fprintln(r.stdout, r.build.String())
		return err
	case config.ProjectScenarioKind:
		return r.runProject(ctx, cfg, effector, scenario.Project)
	default:
		req, err := request.Build(cfg)
		if err != nil {
			return err
		}
		_, err = r.dispatch(ctx, cfg, req)
		return err
	}
}

func (r *Runner) runProject(ctx context.Context, cfg *config.Config, effector config.Effector, ps config.ProjectScenario) error {
	switch ps.Action {
	case config.ActionHelp:
		return printer.RenderHelp(r.stdout, command.Notes, command.Usage())

	case config.ActionInit:
		p, err := InitializeProject(ctx, r.store, r.prompter)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.stdout, "Initialized relay project %q in %s\n", p.Name, r.store.Dir())
		return err

	case config.ActionAddEnv:
		return r.store.AddEnvValue(ps.Env, ps.Key, ps.Value)
	case config.ActionRemoveEnvValue:
		return r.store.RemoveEnvValue(ps.Env, ps.Key)
	case config.ActionRemoveEnv:
		return r.store.RemoveEnv(ps.Env)
	case config.ActionSelectEnv:
		return r.store.SelectEnv(ps.Env)
	case config.ActionAddAuthorization:
		return r.store.AddAuthorization(ps.Token)
	case config.ActionRemoveAuthorization:
		return r.store.RemoveAuthorization()

	case config.ActionPrintEnv:
		p, err := r.store.Load()
		if err != nil {
			return err
		}
		name, env, ok := p.Selected()
		if !ok {
			return storage.ErrNoEnvironmentSelected
		}
		return printer.RenderEnvironment(r.stdout, name, env.Values, true)

	case config.ActionPrintEnvAll:
		p, err := r.store.Load()
		if err != nil {
			return err
		}
		envs := make(map[string]map[string]string, len(p.Environments))
		for name, env := range p.Environments {
			envs[name] = env.Values
		}
		return printer.RenderEnvironments(r.stdout, envs, p.SelectedEnvironment)

	case config.ActionPrintLastCall:
		path, err := r.store.LastCallPath()
		if err != nil {
			return err
		}
		return printer.PrintFile(r.terminal(), path)

	case config.ActionSave:
		req, err := request.Build(cfg)
		if err != nil {
			return err
		}
		return r.save(req, ps.Name)

	case config.ActionSaveAndCall:
		req, err := request.Build(cfg)
		if err != nil {
			return err
		}
		if err := r.save(req, ps.Name); err != nil {
			return err
		}
		return r.call(ctx, cfg, req)

	case config.ActionCall:
		req, err := r.store.LoadRequest(ps.Name, effector)
		if err != nil {
			return err
		}
		return r.call(ctx, cfg, req)

	case config.ActionDelete:
		return r.store.DeleteRequest(ps.Name)
	}
	return fmt.Errorf("unhandled project action %s", ps.Action)
}

func (r *Runner) save(req request.Request, name string) error {
	diff, err := r.store.SaveRequest(req, name)
	if err != nil {
		return err
	}
	if diff != "" {
		r.logger.Info("saved request replaced", "name", name, "diff", diff)
	}
	return nil
}

// call dispatches a saved request and records where its response went.
func (r *Runner) call(ctx context.Context, cfg *config.Config, req request.Request) error {
	path, err := r.dispatch(ctx, cfg, req)
	if err != nil {
		return err
	}
	return r.store.UpdateLastCallPath(path)
}

// dispatch executes req and prints the response. It returns the response
// file path relative to the root, or "" for terminal output.
func (r *Runner) dispatch(ctx context.Context, cfg *config.Config, req request.Request) (string, error) {
	if cfg.Secure() {
		if err := r.authorize(req); err != nil {
			return "", err
		}
	}

	resp, err := req.Execute(ctx, r.client)
	if err != nil {
		return "", err
	}
	r.logger.Debug("request completed", "status", resp.StatusCode, "duration", resp.Duration)

	target := cfg.Printer()
	if target.Target != config.File {
		return "", r.terminal().Print(resp.Body)
	}

	var echo printer.Printer
	if cfg.AlsoPrintToTerminal() {
		echo = r.terminal()
	}
	out := printer.NewFile(r.store.Resolve(target.Path), echo)
	if err := out.Print(resp.Body); err != nil {
		return "", err
	}
	r.logger.Debug("response written", "path", out.Path())
	return target.Path, nil
}

// authorize sends the stored authorization of the active environment unless
// the request already carries one.
func (r *Runner) authorize(req request.Request) error {
	p, err := r.store.Load()
	if errors.Is(err, storage.ErrProjectNotFound) {
		r.logger.Debug("secure request without project, sending unchanged")
		return nil
	}
	if err != nil {
		return err
	}
	token, ok := p.ActiveAuthorization()
	if !ok {
		r.logger.Debug("no authorization stored", "key", p.AuthorizationKey())
		return nil
	}
	req.SetHeaderIfAbsent("Authorization", token)
	return nil
}

func (r *Runner) terminal() *printer.Terminal {
	return printer.NewTerminal(r.stdout, printer.WithHighlight(r.highlight))
}
