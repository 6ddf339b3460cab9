package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-starter/support"
)

func main() {
	config, err := support.Load(support.Environ())
	if err != nil {
		log.Error().Err(err).Msg("failed to start health function")
		os.Exit(1)
	}

	support.ConfigureLogging(config)

	handler, cleanup, err := live(context.Background(), config)
	if err != nil {
		log.Error().Err(err).Msg("failed to start health function")
		os.Exit(1)
	}
	defer cleanup()

	lambda.Start(handler)
}
