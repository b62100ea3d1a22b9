package proxy

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorHandler defines the function interface the router uses to handle any
// error that occurs while processing routes.
type ErrorHandler func(context.Context, events.APIGatewayV2HTTPRequest, error) (events.APIGatewayProxyResponse, error)

// CatchAllHandler defines the function interface the router uses to handle any
// request that doesn't match a route.
type CatchAllHandler func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error)

// NotFoundError is returned by Route when no route matches and no CatchAll
// handler is set.
type NotFoundError struct {
	Method string
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("'%s %s' not found", e.Method, e.Path)
}

// Router matches an incoming events.APIGatewayV2HTTPRequest against its
// routes in the order they were added. The first match is executed.
//
// If the CatchAll handler is set any request that doesn't match a route will be
// handled by it.
//
// If the CatchError handler is set any route that returns an error will first
// be passed into the handler for additional processing. ErrorResponse is a
// ready made CatchError.
//
// Example:
//
//	router := &proxy.Router{}
//	router.Handle(proxy.GET, "/items/(?P<id>[0-9]+)", itemHandler)
//	router.AddErrorHandler(proxy.ErrorResponse)
//
//	if !router.Valid() {
//		return events.APIGatewayProxyResponse{}, router.BuildErrors()
//	}
//
//	return router.Route(ctx, request)
type Router struct {
	Routes     []*Route
	CatchAll   CatchAllHandler
	CatchError ErrorHandler

	// Logger receives a debug entry per routed request. Optional.
	Logger logrus.FieldLogger

	errors []error
}

// Valid returns true if the routers' routes have all been built successfully.
// Otherwise false.
func (router *Router) Valid() bool {
	return len(router.errors) == 0
}

// AddRoute appends route to the list of routes used for request matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// AddBuildError appends an error to the list of router errors.
func (router *Router) AddBuildError(err error) {
	router.errors = append(router.errors, err)
}

// BuildErrors returns a single error that encapsulates all the route errors
// found during router construction.
func (router *Router) BuildErrors() error {
	topError := errors.New("failed building router")

	for _, err := range router.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	return topError
}

// AddRouteIfNoError appends the provided route if no error is present.
// Otherwise it adds the error to the build errors.
func (router *Router) AddRouteIfNoError(route *Route, err error) {
	if err != nil {
		router.AddBuildError(err)
		return
	}

	router.AddRoute(route)
}

// Handle adds a route for method with the specified pattern and handler.
func (router *Router) Handle(method HttpMethod, match string, handler RouteHandler) {
	router.AddRouteIfNoError(NewRoute(method, match, handler))
}

// ANY adds a route matching every method.
func (router *Router) ANY(match string, handler RouteHandler) {
	router.Handle(ANY, match, handler)
}

// AddCatchAllHandler attaches a catchall handler to the router.
func (router *Router) AddCatchAllHandler(handler CatchAllHandler) {
	router.CatchAll = handler
}

// AddErrorHandler attaches a error handler to the router.
func (router *Router) AddErrorHandler(handler ErrorHandler) {
	router.CatchError = handler
}

func (router *Router) routeInternal(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	method := request.RequestContext.HTTP.Method
	path := requestPath(request)

	for _, route := range router.Routes {
		matched, groups := route.IsMatch(request)
		if !matched {
			continue
		}

		router.debug(method, path, route.String())
		return route.Follow(ctx, request, groups)
	}

	if router.CatchAll != nil {
		router.debug(method, path, "catch-all")
		return router.CatchAll(ctx, request)
	}

	return events.APIGatewayProxyResponse{}, &NotFoundError{Method: method, Path: path}
}

func (router *Router) debug(method, path, route string) {
	if router.Logger == nil {
		return
	}

	router.Logger.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
		"route":  route,
	}).Debug("routing request")
}

// Route executes the first route matching request, falling back to CatchAll.
// Without a match or a CatchAll a *NotFoundError is returned.
//
// When CatchError is set any error is handed to it and its result returned.
func (router *Router) Route(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	if router.CatchError == nil {
		return router.routeInternal(ctx, request)
	}

	response, err := router.routeInternal(ctx, request)
	if err != nil {
		if router.Logger != nil {
			router.Logger.WithError(err).Warn("route failed")
		}
		return router.CatchError(ctx, request, err)
	}

	return response, nil
}

// ErrorResponse is an ErrorHandler rendering err as a {"message": ...} body.
// A *NotFoundError becomes a 404, anything else a 500.
func ErrorResponse(_ context.Context, _ events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return Message(http.StatusNotFound, notFound.Error()), nil
	}

	return Message(http.StatusInternalServerError, err.Error()), nil
}
