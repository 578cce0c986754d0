package codec

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	lserrors "github.com/diwise/lightspark-go/pkg/lightspark/errors"
	"github.com/matryer/is"
)

type color string

const (
	colorRed  color = "RED"
	colorBlue color = "BLUE"
)

var colors = Enum("Color", colorRed, colorBlue)

type widget struct {
	ID       string
	Count    int64
	Note     *string
	Color    color
	Parts    []string
	Built    time.Time
	Inventor *inventor
}

type inventor struct {
	Name string
}

var inventorSchema = NewSchema("Inventor", "inventor",
	Required("name", String, func(i *inventor) *string { return &i.Name }),
)

var widgetSchema = NewSchema("Widget", "widget",
	Required("id", String, func(w *widget) *string { return &w.ID }),
	Required("count", Int, func(w *widget) *int64 { return &w.Count }),
	Optional("note", String, func(w *widget) **string { return &w.Note }),
	Required("color", colors, func(w *widget) *color { return &w.Color }),
	Required("parts", StringList, func(w *widget) *[]string { return &w.Parts }),
	Required("built", Time, func(w *widget) *time.Time { return &w.Built }),
	Optional("inventor", inventorSchema, func(w *widget) **inventor { return &w.Inventor }),
)

const widgetJSON string = `{
	"__typename": "Widget",
	"widget_id": "Widget:1",
	"widget_count": 9007199254740993,
	"widget_note": null,
	"widget_color": "RED",
	"widget_parts": ["a", "b"],
	"widget_built": "2023-05-01T12:30:00Z",
	"widget_inventor": {"__typename": "Inventor", "inventor_name": "Ada"}
}`

func TestDecodeWidget(t *testing.T) {
	is := is.New(t)

	w, err := widgetSchema.Unmarshal([]byte(widgetJSON))
	is.NoErr(err)

	is.Equal(w.ID, "Widget:1")
	is.Equal(w.Count, int64(9007199254740993)) // large integers must not lose precision
	is.True(w.Note == nil)
	is.Equal(w.Color, colorRed)
	is.Equal(w.Parts, []string{"a", "b"})
	is.True(w.Built.Equal(time.Date(2023, 5, 1, 12, 30, 0, 0, time.UTC)))
	is.Equal(w.Inventor.Name, "Ada")
}

func TestRoundTripWidget(t *testing.T) {
	is := is.New(t)

	w, err := widgetSchema.Unmarshal([]byte(widgetJSON))
	is.NoErr(err)

	body, err := widgetSchema.Marshal(w)
	is.NoErr(err)

	again, err := widgetSchema.Unmarshal(body)
	is.NoErr(err)
	is.Equal(w, again)

	obj, err := ParseObject(body)
	is.NoErr(err)
	is.Equal(obj[TypenameKey], "Widget")

	_, hasNote := obj["widget_note"]
	is.True(!hasNote) // absent optional values should be omitted
}

func TestMissingRequiredFieldIsADecodeError(t *testing.T) {
	is := is.New(t)

	_, err := widgetSchema.Unmarshal([]byte(`{"widget_id": "Widget:1"}`))
	is.True(errors.Is(err, lserrors.ErrDecode))

	var de *lserrors.DecodeError
	is.True(errors.As(err, &de))
	is.Equal(de.Path, []string{"widget_count"})
}

func TestNestedDecodeErrorCarriesFullPath(t *testing.T) {
	is := is.New(t)

	body := `{
		"widget_id": "Widget:1", "widget_count": 1, "widget_color": "RED",
		"widget_parts": [], "widget_built": "2023-05-01T12:30:00Z",
		"widget_inventor": {"inventor_name": 17}
	}`

	_, err := widgetSchema.Unmarshal([]byte(body))

	var de *lserrors.DecodeError
	is.True(errors.As(err, &de))
	is.Equal(de.Path, []string{"widget_inventor", "inventor_name"})
}

func TestUnknownEnumTagDecodesToFutureValue(t *testing.T) {
	is := is.New(t)

	report := &Report{}
	c, err := Decode(colors, "BOGUS_TAG", report)
	is.NoErr(err)

	is.Equal(string(c), FutureValue)
	is.Equal(len(report.Unknown), 1)
	is.Equal(report.Unknown[0].Value, "BOGUS_TAG")
	is.Equal(report.Unknown[0].Kind, KindEnum)
	is.True(errors.Is(report.Unknown[0].Err(), lserrors.ErrUnknownVariant))

	v, err := Encode(colors, c)
	is.NoErr(err)
	is.Equal(v, FutureValue) // the original tag is not restored
}

func TestKnownEnumTags(t *testing.T) {
	is := is.New(t)

	is.True(Known(colors, "BLUE"))
	is.True(!Known(colors, "GREEN"))
}

func TestEnumRejectsNonStrings(t *testing.T) {
	is := is.New(t)

	_, err := Decode(colors, json.Number("1"), nil)
	is.True(errors.Is(err, lserrors.ErrDecode))
}

func TestIntRejectsFractions(t *testing.T) {
	is := is.New(t)

	_, err := Decode(Int, json.Number("1.5"), nil)
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = Decode(Int, 1.5, nil)
	is.True(errors.Is(err, lserrors.ErrDecode))

	i, err := Decode(Int, 42.0, nil)
	is.NoErr(err)
	is.Equal(i, int64(42))
}

func TestIntRejectsFloatsOutOfRange(t *testing.T) {
	is := is.New(t)

	_, err := Decode(Int, math.Pow(2, 63), nil)
	is.True(errors.Is(err, lserrors.ErrDecode)) // would wrap to MinInt64

	_, err = Decode(Int, -math.Pow(2, 64), nil)
	is.True(errors.Is(err, lserrors.ErrDecode))

	i, err := Decode(Int, -math.Pow(2, 63), nil)
	is.NoErr(err)
	is.Equal(i, int64(math.MinInt64))
}

func TestTimeIsNormalisedOnEncode(t *testing.T) {
	is := is.New(t)

	tm, err := Decode(Time, "2023-05-01T14:30:00.500+02:00", nil)
	is.NoErr(err)

	v, err := Encode(Time, tm.UTC())
	is.NoErr(err)
	is.Equal(v, "2023-05-01T12:30:00.5Z")

	_, err = Decode(Time, "yesterday", nil)
	is.True(errors.Is(err, lserrors.ErrDecode))
}

func TestRefDecodesId(t *testing.T) {
	is := is.New(t)

	r, err := Decode(Ref, map[string]any{"id": "Node:1"}, nil)
	is.NoErr(err)
	is.Equal(r.EntityID(), "Node:1")

	_, err = Decode(Ref, map[string]any{}, nil)
	is.True(errors.Is(err, lserrors.ErrDecode))
}

func TestListErrorPathContainsIndex(t *testing.T) {
	is := is.New(t)

	_, err := DecodeAt(StringList, []any{"a", 2}, []string{"parts"}, nil)

	var de *lserrors.DecodeError
	is.True(errors.As(err, &de))
	is.Equal(de.Path, []string{"parts", "1"})
}

func TestEmptyPrefixUsesBareKeys(t *testing.T) {
	is := is.New(t)

	s := NewSchema("", "",
		Required("name", String, func(i *inventor) *string { return &i.Name }),
	)

	is.Equal(s.Keys(), []string{"name"})

	obj, err := s.ToJSON(inventor{Name: "Grace"})
	is.NoErr(err)
	is.Equal(obj, map[string]any{"name": "Grace"}) // no type name for anonymous schemas
}

func TestDuplicateKeysPanic(t *testing.T) {
	is := is.New(t)

	defer func() {
		is.True(recover() != nil) // should panic on duplicate wire keys
	}()

	NewSchema("Inventor", "inventor",
		Required("name", String, func(i *inventor) *string { return &i.Name }),
		Required("name", String, func(i *inventor) *string { return &i.Name }),
	)
}

type shape interface {
	Typename() string
}

type square struct{ Side int64 }

func (square) Typename() string { return "Square" }

type circle struct{ Radius int64 }

func (circle) Typename() string { return "Circle" }

type unknownShape struct{ typename string }

func (u unknownShape) Typename() string { return u.typename }

var shapes = NewUnion("Shape",
	func(tn string) shape { return unknownShape{typename: tn} },
	Variant[shape](NewSchema("Square", "square",
		Required("side", Int, func(s *square) *int64 { return &s.Side }),
	)),
	Variant[shape](NewSchema("Circle", "circle",
		Required("radius", Int, func(c *circle) *int64 { return &c.Radius }),
	)),
)

func TestUnionDispatchesOnTypename(t *testing.T) {
	is := is.New(t)

	s, err := shapes.FromJSON(map[string]any{TypenameKey: "Circle", "circle_radius": json.Number("3")}, nil)
	is.NoErr(err)

	c, ok := s.(*circle)
	is.True(ok)
	is.Equal(c.Radius, int64(3))

	obj, err := shapes.ToJSON(s)
	is.NoErr(err)
	is.Equal(obj[TypenameKey], "Circle")
	is.Equal(obj["circle_radius"], json.Number("3"))
}

func TestUnknownUnionVariant(t *testing.T) {
	is := is.New(t)

	report := &Report{}
	s, err := shapes.FromJSON(map[string]any{TypenameKey: "Hexagon"}, report)
	is.NoErr(err)

	is.Equal(s.Typename(), "Hexagon")
	is.Equal(len(report.Unknown), 1)
	is.Equal(report.Unknown[0].Kind, KindVariant)

	obj, err := shapes.ToJSON(s)
	is.NoErr(err)
	is.Equal(obj, map[string]any{TypenameKey: "Hexagon"})
}

func TestUnionWithoutTypename(t *testing.T) {
	is := is.New(t)

	_, err := shapes.FromJSON(map[string]any{"square_side": 1}, nil)
	is.True(errors.Is(err, lserrors.ErrDecode))
}

func TestMalformedJSON(t *testing.T) {
	is := is.New(t)

	_, err := ParseObject([]byte(`{"a":`))
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = ParseObject([]byte(`[1,2]`))
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = ParseObject([]byte(`{"a": 1} {"b": 2}`))
	is.True(errors.Is(err, lserrors.ErrDecode))

	_, err = ParseJSON([]byte(`{"a": 1}garbage`))
	is.True(errors.Is(err, lserrors.ErrDecode))

	v, err := ParseJSON([]byte(" {\"a\": 1}\n\t "))
	is.NoErr(err)
	is.Equal(v, map[string]any{"a": json.Number("1")})
}
