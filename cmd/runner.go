package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/sp/internal/services"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	service services.Service
	cache   *services.TokenCache
	logger  *log.Logger
	output  io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Service services.Service
	Cache   *services.TokenCache
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Cache == nil {
		opts.Cache = services.NewTokenCache(opts.Config.TokenPath())
	}

	return &Runner{
		config:  opts.Config,
		service: opts.Service,
		cache:   opts.Cache,
		logger:  opts.Logger,
		output:  opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand,
		nowCommand, playCommand, pauseCommand, skipCommand, prevCommand, volumeCommand, devicesCommand,
		queueCommand, searchCommand, infoCommand,
		playlistsCommand, playlistCommand,
		savedCommand, saveCommand, unsaveCommand,
		recentCommand, topCommand,
		pickCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// requireService ensures the Spotify service is configured and authenticated
// from the token cache before a command issues API calls.
func (r *Runner) requireService() (services.Service, error) {
	if r.service == nil {
		return nil, fmt.Errorf("%w: Spotify credentials not configured", shared.ErrMissingCredentials)
	}
	return r.service, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}
