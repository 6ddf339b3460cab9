package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weegigs/wee-starter/connectors/wehttp"
	"github.com/weegigs/wee-starter/stores/mongodb"
	"github.com/weegigs/wee-starter/support"
)

type GatewayHandler = func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// createHandler requires a connected client so the function cannot start serving
// before the database bootstrap has succeeded.
func createHandler(_ *mongo.Client) GatewayHandler {
	body := string(wehttp.HealthBody())

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		return events.APIGatewayV2HTTPResponse{
			StatusCode: http.StatusOK,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       body,
		}, nil
	}
}

func mongoSettings(config support.Config) mongodb.Settings {
	return mongodb.Settings{URI: config.MongoURI, ConnectTimeout: config.MongoConnectTimeout}
}

var Live = wire.NewSet(createHandler, mongoSettings, mongodb.Connect)
