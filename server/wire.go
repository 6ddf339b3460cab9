//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/weegigs/wee-starter/support"
)

func initialize(ctx context.Context, config support.Config, logger *zerolog.Logger) (*Application, func(), error) {
	panic(wire.Build(Live))
}
