package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"

	"github.com/diwise/lightspark-go/pkg/lightspark/codec"
	lserrors "github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/fragments"
	"github.com/diwise/lightspark-go/pkg/lightspark/operations"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

type state string

var states = codec.Enum("State", state("ON"), state("OFF"))

type lamp struct {
	Name  string
	State state
}

var lampSchema = codec.NewSchema("Lamp", "lamp",
	codec.Required("name", codec.String, func(l *lamp) *string { return &l.Name }),
	codec.Required("state", states, func(l *lamp) *state { return &l.State }),
)

var lampsSchema = codec.NewSchema("Lamps", "",
	codec.Required("count", codec.Int, func(c *types.Connection[lamp]) *int64 { return &c.Count }),
	codec.Optional("page_info", codec.NewSchema("PageInfo", "",
		codec.Optional("has_next_page", codec.Bool, func(pi *types.PageInfo) **bool { return &pi.HasNextPage }),
		codec.Optional("end_cursor", codec.String, func(pi *types.PageInfo) **string { return &pi.EndCursor }),
	), func(c *types.Connection[lamp]) **types.PageInfo { return &c.PageInfo }),
	codec.Required("entities", codec.List[lamp](lampSchema), func(c *types.Connection[lamp]) *[]lamp { return &c.Entities }),
)

func getLamp(id string) *operations.Operation[lamp] {
	op := operations.MustBuild(fragments.New(), `query GetLamp($id: ID!) { entity(id: $id) { lamp_name: name lamp_state: state } }`,
		operations.EntityAt(lampSchema, "entity"))
	return op.WithVariables(map[string]any{"id": id})
}

func respondWith(body string) Transport {
	return TransportFunc(func(ctx context.Context, _ []byte, _ map[string][]string) ([]byte, error) {
		return []byte(body), nil
	})
}

func TestExecuteDecodesResult(t *testing.T) {
	is := is.New(t)

	var sent map[string]any
	var sentHeaders map[string][]string

	transport := TransportFunc(func(ctx context.Context, body []byte, headers map[string][]string) ([]byte, error) {
		sentHeaders = headers
		is.NoErr(json.Unmarshal(body, &sent))
		return []byte(`{"data": {"entity": {"lamp_name": "desk", "lamp_state": "ON"}}}`), nil
	})

	c := New(transport, WithHeaders(map[string][]string{"X-Lightspark-Beta": {"z2h0BBYxTA83cjW7fi8QwWtBPCzkQKiemcuhKY08LOo"}}))

	l, err := Execute(context.Background(), c, getLamp("Lamp:1"))
	is.NoErr(err)
	is.Equal(l.Name, "desk")
	is.Equal(l.State, state("ON"))

	is.Equal(sent["variables"], map[string]any{"id": "Lamp:1"})
	is.True(sent["query"] != nil)
	is.Equal(len(sentHeaders["X-Lightspark-Beta"]), 1)
}

func TestExecuteNotFound(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": {"entity": null}}`))

	l, err := Execute(context.Background(), c, getLamp("Lamp:404"))
	is.NoErr(err)
	is.True(l == nil)

	_, err = Require(context.Background(), c, getLamp("Lamp:404"))
	is.True(errors.Is(err, lserrors.ErrNotFound))
}

func TestGraphQLErrors(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": null, "errors": [{"message": "entity is not visible", "path": ["entity"]}]}`))

	_, err := Execute(context.Background(), c, getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrGraphQL))
}

func TestTransportErrors(t *testing.T) {
	is := is.New(t)

	c := New(TransportFunc(func(ctx context.Context, _ []byte, _ map[string][]string) ([]byte, error) {
		return nil, fmt.Errorf("connection refused")
	}))

	_, err := Execute(context.Background(), c, getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrTransport))
}

func TestMalformedResponses(t *testing.T) {
	is := is.New(t)

	_, err := Execute(context.Background(), New(respondWith(`<html>`)), getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = Execute(context.Background(), New(respondWith(`{"data": [1]}`)), getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = Execute(context.Background(), New(respondWith(`{"data": {"entity": {"lamp_state": "ON"}}}`)), getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrDecode)) // lamp_name is required
}

func TestTrailingDataAfterResponseIsRejected(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": {"entity": {"lamp_name": "desk", "lamp_state": "ON"}}}<!-- proxy footer -->`))

	_, err := Execute(context.Background(), c, getLamp("Lamp:1"))
	is.True(errors.Is(err, lserrors.ErrDecode))
}

func TestUnknownEnumInResponse(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": {"entity": {"lamp_name": "desk", "lamp_state": "DIMMED"}}}`))

	l, err := Execute(context.Background(), c, getLamp("Lamp:1"))
	is.NoErr(err)
	is.Equal(string(l.State), codec.FutureValue)
}

func TestExecuteRaw(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": {"current_account": {"id": "Account:1"}}}`), Debug("true"))

	data, err := c.ExecuteRaw(context.Background(), "query { current_account { id } }", nil)
	is.NoErr(err)
	is.Equal(data["current_account"], map[string]any{"id": "Account:1"})
}

const lampsTemplate string = `
query Lamps($after: String) {
    lamps(after: $after) {
        count
        page_info { has_next_page end_cursor }
        entities { lamp_name: name lamp_state: state }
    }
}`

func lampPages(cursor *string) (*operations.Operation[types.Connection[lamp]], error) {
	variables := map[string]any{}
	if cursor != nil {
		variables["after"] = *cursor
	}
	return operations.Build(fragments.New(), lampsTemplate, variables, operations.EntityAt(lampsSchema, "lamps"))
}

func TestFetchAllFollowsCursors(t *testing.T) {
	is := is.New(t)

	requests := 0

	transport := TransportFunc(func(ctx context.Context, body []byte, _ map[string][]string) ([]byte, error) {
		requests++

		req := operations.Request{}
		is.NoErr(json.Unmarshal(body, &req))

		if _, ok := req.Variables["after"]; !ok {
			return []byte(`{"data": {"lamps": {
				"count": 3,
				"page_info": {"has_next_page": true, "end_cursor": "c2"},
				"entities": [{"lamp_name": "a", "lamp_state": "ON"}, {"lamp_name": "b", "lamp_state": "OFF"}]
			}}}`), nil
		}

		is.Equal(req.Variables["after"], "c2")

		return []byte(`{"data": {"lamps": {
			"count": 3,
			"page_info": {"has_next_page": false},
			"entities": [{"lamp_name": "c", "lamp_state": "ON"}]
		}}}`), nil
	})

	names := []string{}

	count, err := FetchAll[lamp](context.Background(), New(transport), lampPages, func(l lamp) {
		names = append(names, l.Name)
	})
	is.NoErr(err)

	is.Equal(count, 3)
	is.Equal(requests, 2)
	is.Equal(names, []string{"a", "b", "c"})
}

func TestFetchAllStopsWithoutEndCursor(t *testing.T) {
	is := is.New(t)

	c := New(respondWith(`{"data": {"lamps": {
		"count": 10,
		"page_info": {"has_next_page": true},
		"entities": [{"lamp_name": "a", "lamp_state": "ON"}]
	}}}`))

	count, err := FetchAll[lamp](context.Background(), c, lampPages, func(lamp) {})
	is.NoErr(err)
	is.Equal(count, 1)
}

func TestFetchAllFailsOnRepeatedCursor(t *testing.T) {
	is := is.New(t)

	requests := 0

	c := New(TransportFunc(func(ctx context.Context, _ []byte, _ map[string][]string) ([]byte, error) {
		requests++
		return []byte(`{"data": {"lamps": {
			"count": 10,
			"page_info": {"has_next_page": true, "end_cursor": "stuck"},
			"entities": [{"lamp_name": "a", "lamp_state": "ON"}]
		}}}`), nil
	}))

	count, err := FetchAll[lamp](context.Background(), c, lampPages, func(lamp) {})
	is.True(err != nil)
	is.Equal(requests, 2)
	is.Equal(count, 2)
}
