package proxy

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayV2HTTPRequest
	Params  map[string]string
}
