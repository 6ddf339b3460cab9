//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/weegigs/wee-starter/support"
)

func live(ctx context.Context, config support.Config) (GatewayHandler, func(), error) {
	panic(wire.Build(Live))
}
