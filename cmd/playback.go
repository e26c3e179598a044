package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Now shows the currently playing track.
func (r *Runner) Now(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	track, err := svc.NowPlaying(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		if track == nil {
			return r.writePlainln("null")
		}
		return r.writeJSON(track, true)
	}

	return r.writePlainln("%s", formatter.NowPlaying(track))
}

// Play resumes playback or plays the given URI.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	uri := cmd.StringArg("uri")
	if err := svc.Play(ctx, uri); err != nil {
		return err
	}

	if uri == "" {
		return r.writePlainln("Resumed.")
	}
	return r.writePlainln("Playing.")
}

// Pause pauses playback.
func (r *Runner) Pause(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	if err := svc.Pause(ctx); err != nil {
		return err
	}
	return r.writePlainln("Paused.")
}

// Skip skips forward n tracks, issuing one next call per track.
func (r *Runner) Skip(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	n := 1
	if arg := cmd.StringArg("n"); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 1 {
			return fmt.Errorf("%w: skip count must be a positive integer, got %q", shared.ErrInvalidArgument, arg)
		}
		n = parsed
	}

	for i := 0; i < n; i++ {
		if err := svc.Next(ctx); err != nil {
			return err
		}
	}

	return r.writePlainln("Skipped %d track(s).", n)
}

// Prev goes to the previous track.
func (r *Runner) Prev(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	if err := svc.Previous(ctx); err != nil {
		return err
	}
	return r.writePlainln("Previous track.")
}

// Volume sets playback volume.
func (r *Runner) Volume(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	arg := cmd.StringArg("level")
	if arg == "" {
		return fmt.Errorf("%w: usage: sp volume <0-100>", shared.ErrMissingArgument)
	}

	level, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: volume must be an integer, got %q", shared.ErrInvalidArgument, arg)
	}

	if err := svc.SetVolume(ctx, level); err != nil {
		return err
	}
	return r.writePlainln("Volume: %d%%", level)
}

// Devices lists available playback devices.
func (r *Runner) Devices(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	devices, err := svc.Devices(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(devices, true)
	}

	if len(devices) == 0 {
		return r.writePlainln("No devices found.")
	}

	lines := make([]string, len(devices))
	for i, d := range devices {
		lines[i] = formatter.Device(d)
	}
	return r.writePlainln("%s", strings.Join(lines, "\n"))
}
