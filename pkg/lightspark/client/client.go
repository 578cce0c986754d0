package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
)

// Transport sends an encoded request to the GraphQL endpoint and returns the
// raw response body. Authentication, retries and timeouts are up to the
// implementation.
type Transport interface {
	Do(ctx context.Context, body []byte, headers map[string][]string) ([]byte, error)
}

type TransportFunc func(ctx context.Context, body []byte, headers map[string][]string) ([]byte, error)

func (f TransportFunc) Do(ctx context.Context, body []byte, headers map[string][]string) ([]byte, error) {
	return f(ctx, body, headers)
}

type Client interface {
	// ExecuteRaw sends query and returns the data object of the response
	ExecuteRaw(ctx context.Context, query string, variables map[string]any) (map[string]any, error)
	// ExecuteRequest sends a prepared request. name and opType only label
	// the trace span.
	ExecuteRequest(ctx context.Context, name, opType string, request operations.Request) (map[string]any, error)
}

func Debug(enabled string) func(*lsClient) {
	return func(c *lsClient) {
		c.debug = (enabled == "true")
	}
}

// WithHeaders adds headers that are passed to the transport with every request
func WithHeaders(headers map[string][]string) func(*lsClient) {
	return func(c *lsClient) {
		maps.Copy(c.headers, headers)
	}
}

func New(transport Transport, options ...func(*lsClient)) Client {
	c := &lsClient{
		transport: transport,
		headers:   map[string][]string{},
		debug:     false,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeOperation     string = "graphql-operation"
	TraceAttributeOperationType string = "graphql-operation-type"
)

var tracer = otel.Tracer("lightspark-client")

type lsClient struct {
	transport Transport
	headers   map[string][]string
	debug     bool
}

type response struct {
	Data   map[string]any `json:"data"`
	Errors gqlerror.List  `json:"errors"`
}

func (c *lsClient) ExecuteRaw(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	return c.ExecuteRequest(ctx, "", "", operations.Request{Query: query, Variables: variables})
}

func (c *lsClient) ExecuteRequest(ctx context.Context, name, opType string, request operations.Request) (map[string]any, error) {
	var err error

	ctx, span := tracer.Start(ctx, "execute-operation",
		trace.WithAttributes(attribute.String(TraceAttributeOperation, name)),
		trace.WithAttributes(attribute.String(TraceAttributeOperationType, opType)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if request.Variables == nil {
		request.Variables = map[string]any{}
	}

	body, err := json.Marshal(request)
	if err != nil {
		err = fmt.Errorf("failed to encode request: %w", err)
		return nil, err
	}

	if c.debug {
		log.Debug("executing operation", "operation", name, "body", string(body))
	}

	respBody, err := c.transport.Do(ctx, body, c.headers)
	if err != nil {
		err = errors.NewTransportError(err)
		return nil, err
	}

	if c.debug {
		log.Debug("received response", "operation", name, "body", string(respBody))
	}

	resp, err := decodeResponse(respBody)
	if err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		log.Error("operation failed", "operation", name, "err", resp.Errors.Error())
		err = fmt.Errorf("%w: %w", errors.ErrGraphQL, resp.Errors)
		return nil, err
	}

	return resp.Data, nil
}

// decodeResponse parses a response envelope keeping numbers as json.Number
func decodeResponse(body []byte) (*response, error) {
	obj, err := codec.ParseObject(body)
	if err != nil {
		return nil, err
	}

	resp := &response{}

	if errs, ok := obj["errors"]; ok && errs != nil {
		b, _ := json.Marshal(errs)
		err = json.Unmarshal(b, &resp.Errors)
		if err != nil {
			return nil, errors.NewDecodeError([]string{"errors"}, "malformed errors array")
		}
	}

	switch data := obj["data"].(type) {
	case nil:
	case map[string]any:
		resp.Data = data
	default:
		return nil, codec.ShapeError([]string{"data"}, "object", data)
	}

	return resp, nil
}

// Execute runs op and decodes its result. A nil result without an error
// means that the requested object does not exist.
func Execute[T any](ctx context.Context, c Client, op *operations.Operation[T]) (*T, error) {
	data, err := c.ExecuteRequest(ctx, op.Name, op.Type, op.Request())
	if err != nil {
		return nil, err
	}

	report := &codec.Report{}

	result, err := op.Decode(data, report)
	if err != nil {
		return nil, fmt.Errorf("failed to decode result of %s: %w", op.Name, err)
	}

	if !report.Empty() {
		log := logging.GetFromContext(ctx)
		for _, u := range report.Unknown {
			log.Warn("unknown value in response",
				slog.String("operation", op.Name),
				slog.String("path", u.Path),
				slog.String("kind", u.Kind),
				slog.String("type", u.Type),
				slog.String("value", u.Value),
			)
		}
	}

	return result, nil
}

// Require is Execute for callers that treat a missing object as an error
func Require[T any](ctx context.Context, c Client, op *operations.Operation[T]) (*T, error) {
	result, err := Execute(ctx, c, op)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("%s returned no result", op.Name))
	}

	return result, nil
}
