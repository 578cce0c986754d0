package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/diwise/lightspark-go/pkg/lightspark/types"
)

var (
	String     Codec[string]    = stringCodec{}
	Bool       Codec[bool]      = boolCodec{}
	Int        Codec[int64]     = intCodec{}
	Float      Codec[float64]   = floatCodec{}
	Time       Codec[time.Time] = timeCodec{}
	Ref        Codec[types.Ref] = refCodec{}
	StringList Codec[[]string]  = List(String)
)

type stringCodec struct{}

func (stringCodec) decode(v any, path []string, _ *Report) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wrongShape(path, "string", v)
	}
	return s, nil
}

func (stringCodec) encode(s string) (any, error) {
	return s, nil
}

type boolCodec struct{}

func (boolCodec) decode(v any, path []string, _ *Report) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, wrongShape(path, "boolean", v)
	}
	return b, nil
}

func (boolCodec) encode(b bool) (any, error) {
	return b, nil
}

// intCodec handles the Int and Long scalars
type intCodec struct{}

func (intCodec) decode(v any, path []string, _ *Report) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, errors.NewDecodeError(path, fmt.Sprintf("%s is not an integer", n.String()))
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, errors.NewDecodeError(path, fmt.Sprintf("%v is not an integer", n))
		}
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, wrongShape(path, "number", v)
	}
}

func (intCodec) encode(i int64) (any, error) {
	return json.Number(strconv.FormatInt(i, 10)), nil
}

type floatCodec struct{}

func (floatCodec) decode(v any, path []string, _ *Report) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, errors.NewDecodeError(path, fmt.Sprintf("%s is not a number", n.String()))
		}
		return f, nil
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, wrongShape(path, "number", v)
	}
}

func (floatCodec) encode(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v can not be represented in json", f)
	}
	return f, nil
}

// timeCodec handles the DateTime scalar. Values are written back in RFC 3339
// with nanosecond precision, which normalises any redundant formatting.
type timeCodec struct{}

func (timeCodec) decode(v any, path []string, _ *Report) (time.Time, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, wrongShape(path, "timestamp string", v)
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.NewDecodeError(path, fmt.Sprintf("invalid timestamp %q", s))
	}

	return t, nil
}

func (timeCodec) encode(t time.Time) (any, error) {
	return t.Format(time.RFC3339Nano), nil
}

// refCodec decodes the { id } selection used for references to other entities
type refCodec struct{}

func (refCodec) decode(v any, path []string, _ *Report) (types.Ref, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return types.Ref{}, wrongShape(path, "object", v)
	}

	id, ok := obj["id"].(string)
	if !ok {
		return types.Ref{}, errors.NewDecodeError(child(path, "id"), "reference without an id")
	}

	return types.Ref{ID: id}, nil
}

func (refCodec) encode(r types.Ref) (any, error) {
	return map[string]any{"id": r.ID}, nil
}

type listCodec[F any] struct {
	item Codec[F]
}

// List decodes a JSON array where every item is handled by item
func List[F any](item Codec[F]) Codec[[]F] {
	return listCodec[F]{item: item}
}

func (lc listCodec[F]) decode(v any, path []string, r *Report) ([]F, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, wrongShape(path, "array", v)
	}

	result := make([]F, 0, len(arr))

	for idx, item := range arr {
		f, err := lc.item.decode(item, child(path, strconv.Itoa(idx)), r)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}

	return result, nil
}

func (lc listCodec[F]) encode(items []F) (any, error) {
	arr := make([]any, 0, len(items))

	for _, item := range items {
		v, err := lc.item.encode(item)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	return arr, nil
}
