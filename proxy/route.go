package proxy

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteHandler defines the function interface the route uses to execute a
// request when the route is matched.
type RouteHandler func(*RouteContext) (events.APIGatewayProxyResponse, error)

// Route pairs a HttpMethod and a path regex. A request matching both is
// passed to Handler.
type Route struct {
	Method  HttpMethod
	Regex   *regexp.Regexp
	Handler RouteHandler
}

// NewRoute returns a Route for the specified method, pattern and handler. The
// pattern is anchored and tolerates a trailing slash.
func NewRoute(method HttpMethod, pattern string, handler RouteHandler) (*Route, error) {
	if handler == nil {
		return nil, errors.Errorf("no handler given for pattern '%s'", pattern)
	}

	rx, err := regexp.Compile("^" + pattern + "/?$")
	if err != nil {
		return nil, errors.Wrapf(err, "failed compiling regex pattern '%s'", pattern)
	}

	return &Route{
		Method:  method,
		Regex:   rx,
		Handler: handler,
	}, nil
}

func (route *Route) String() string {
	return fmt.Sprintf("%s %s", route.Method, route.Regex)
}

// IsMatch return true if there is a match otherwise false. The match groups are
// also returned.
func (route *Route) IsMatch(request events.APIGatewayV2HTTPRequest) (bool, []string) {
	if !route.Method.Matches(request.RequestContext.HTTP.Method) {
		return false, nil
	}

	groups := route.Regex.FindStringSubmatch(requestPath(request))
	if len(groups) == 0 {
		return false, nil
	}

	return true, groups
}

// Context constructs the RouteContext handed to the route's handler.
//
// Params are collected from the query string, the api gateway path
// parameters and finally the named regex groups. Later sources win on key
// collisions.
func (route *Route) Context(ctx context.Context, request events.APIGatewayV2HTTPRequest, groups []string) (*RouteContext, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no matches available, unable to generate context for route %v", route)
	}

	params := make(map[string]string)

	for k, v := range request.QueryStringParameters {
		params[k] = v
	}

	for k, v := range request.PathParameters {
		params[k] = v
	}

	for i, name := range route.Regex.SubexpNames() {
		if i != 0 && name != "" && groups[i] != "" {
			params[name] = groups[i]
		}
	}

	return &RouteContext{
		Context: ctx,
		Request: request,
		Params:  params,
	}, nil
}

// Follow extracts the route context for the given request and executes the
// route's handler function.
func (route *Route) Follow(ctx context.Context, request events.APIGatewayV2HTTPRequest, groups []string) (events.APIGatewayProxyResponse, error) {
	rctx, err := route.Context(ctx, request, groups)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrapf(err, "failed getting context for route %v", route.Regex)
	}

	return route.Handler(rctx)
}

// requestPath prefers RawPath and falls back to the request context path for
// events that omit it.
func requestPath(request events.APIGatewayV2HTTPRequest) string {
	if request.RawPath != "" {
		return request.RawPath
	}

	return request.RequestContext.HTTP.Path
}
