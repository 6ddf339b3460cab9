package main

import (
	"context"

	"github.com/weegigs/wee-starter/support"
)

// run validates the configuration and bootstraps the database before any socket
// is opened. Every startup error is returned to the caller unlogged.
func run(ctx context.Context, lookup support.Lookup) error {
	config, err := support.Load(lookup)
	if err != nil {
		return err
	}

	logger := support.ConfigureLogging(config)

	app, cleanup, err := initialize(ctx, config, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Serve(ctx)
}
