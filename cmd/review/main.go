// Command review lets operators list, approve and reject case suggestions
// from a terminal. It reads the same configuration as the server.
//
// Usage:
//
//	review list --state pending --top 20
//	review approve 42 --notes "added to catalog"
//	review set-state 42 escalated
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/casedesk-backend/internal/app"
	"github.com/heartmarshall/casedesk-backend/internal/cli"
	"github.com/heartmarshall/casedesk-backend/internal/config"
)

func main() {
	open := func(ctx context.Context) (cli.ReviewService, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		// Keep stderr quiet unless something goes wrong.
		cfg.Log.Level = "warn"
		logger := app.NewLogger(cfg.Log)

		c, err := app.NewContainer(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("review connected", slog.String("version", app.BuildVersion()))
		return c.Suggestions, c.Close, nil
	}

	root := cli.NewReviewCmd(open)
	root.Version = app.BuildVersion()

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
