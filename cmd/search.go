package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sp/internal/formatter"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search searches the catalog across the requested item types.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	svc, err := r.requireService()
	if err != nil {
		return err
	}

	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: usage: sp search <query> [--type TYPE] [--limit N]", shared.ErrMissingArgument)
	}

	types := shared.SplitIDs(cmd.String("type"))
	limit := cmd.Int("limit")

	r.logger.Debugf("searching for %q types=%v limit=%d", query, types, limit)

	results, err := svc.Search(ctx, query, types, limit)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(results, true)
	}
	return r.writePlainln("%s", formatter.SearchResults(results))
}
