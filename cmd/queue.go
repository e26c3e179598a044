package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// QueueShow shows the current playback queue.
func (r *Runner) QueueShow(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	queue, err := svc.Queue(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(queue, true)
	}
	return r.writePlainln("%s", formatter.Queue(queue))
}

// QueueAdd adds a track URI to the end of the queue.
func (r *Runner) QueueAdd(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	uri := cmd.StringArg("uri")
	if uri == "" {
		return fmt.Errorf("%w: usage: sp queue add <uri>", shared.ErrMissingArgument)
	}

	if err := svc.QueueAdd(ctx, uri); err != nil {
		return err
	}
	return r.writePlainln("Added to queue.")
}
