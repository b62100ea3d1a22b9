package mediasync

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/prognoshealth/mediasync/lambdautils"
	"github.com/prognoshealth/mediasync/proxy"
)

// HelloMessage is the message carried by every successful response.
const HelloMessage = "hello world"

// Handler answers lambda invocations. It holds no per invocation state and is
// safe for concurrent use.
type Handler struct {
	logger logrus.FieldLogger
	router *proxy.Router
	err    error
}

// Option configures a Handler built by New.
type Option func(*Handler)

// WithLogger sets the logger used for invocation logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// New returns a Handler. Without options it logs through the logrus standard
// logger.
func New(opts ...Option) *Handler {
	h := &Handler{logger: logrus.StandardLogger()}

	for _, opt := range opts {
		opt(h)
	}

	h.router, h.err = h.buildRouter(helloPattern)
	if h.err != nil {
		h.logger.WithError(h.err).Error("failed building router")
	}

	return h
}

// helloPattern matches every path api gateway can deliver.
const helloPattern = "/.*"

// buildRouter serves hello on pattern for every method. Requests without a
// path fall through to the catch all.
func (h *Handler) buildRouter(pattern string) (*proxy.Router, error) {
	router := &proxy.Router{Logger: h.logger}
	router.ANY(pattern, h.helloRoute)
	router.AddCatchAllHandler(h.catchAll)
	router.AddErrorHandler(proxy.ErrorResponse)

	if !router.Valid() {
		return nil, router.BuildErrors()
	}

	return router, nil
}

// Handle answers a single invocation. Both arguments may be empty: a nil
// context is replaced by context.Background and a nil event is treated like
// any other non http payload.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	log := lambdautils.Logger(ctx, h.logger)

	request, ok := httpRequest(event)
	if !ok {
		log.Debug("invoked without http event")
		return hello(), nil
	}

	log.WithFields(logrus.Fields{
		"method": request.RequestContext.HTTP.Method,
		"path":   request.RawPath,
	}).Debug("invoked by api gateway")

	if h.err != nil {
		return proxy.ErrorResponse(ctx, request, h.err)
	}

	return h.router.Route(ctx, request)
}

func (h *Handler) helloRoute(rctx *proxy.RouteContext) (events.APIGatewayProxyResponse, error) {
	if len(rctx.Params) > 0 {
		lambdautils.Logger(rctx.Context, h.logger).WithField("params", rctx.Params).Debug("request params ignored")
	}

	return hello(), nil
}

func (h *Handler) catchAll(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	return hello(), nil
}

func hello() events.APIGatewayProxyResponse {
	return proxy.Message(http.StatusOK, HelloMessage)
}

// httpRequest decodes event as an api gateway v2 http request. Events that are
// not JSON objects or carry no http method are rejected.
func httpRequest(event json.RawMessage) (events.APIGatewayV2HTTPRequest, bool) {
	var request events.APIGatewayV2HTTPRequest

	trimmed := bytes.TrimSpace(event)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return request, false
	}

	if err := json.Unmarshal(trimmed, &request); err != nil {
		return request, false
	}

	return request, request.RequestContext.HTTP.Method != ""
}

var defaultHandler = New()

// Handle answers an invocation with the package default Handler.
func Handle(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return defaultHandler.Handle(ctx, event)
}
