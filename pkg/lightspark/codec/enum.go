package codec

// FutureValue is the tag every enum decodes to when the server sends a value
// this client does not know about yet. Encoding it does not restore the
// original tag.
const FutureValue string = "FUTURE_VALUE"

type enumCodec[E ~string] struct {
	name  string
	known map[string]E
}

// Enum returns a codec for an enum type that accepts the given tags and maps
// every other tag to FutureValue.
func Enum[E ~string](name string, known ...E) Codec[E] {
	ec := enumCodec[E]{
		name:  name,
		known: make(map[string]E, len(known)),
	}

	for _, e := range known {
		ec.known[string(e)] = e
	}

	return ec
}

func (ec enumCodec[E]) decode(v any, path []string, r *Report) (E, error) {
	tag, ok := v.(string)
	if !ok {
		return E(""), wrongShape(path, "enum string", v)
	}

	if e, ok := ec.known[tag]; ok {
		return e, nil
	}

	r.record(path, KindEnum, ec.name, tag)

	return E(FutureValue), nil
}

func (ec enumCodec[E]) encode(e E) (any, error) {
	return string(e), nil
}

// Known reports whether tag is one of the known tags of the enum codec c
func Known[E ~string](c Codec[E], tag string) bool {
	ec, ok := c.(enumCodec[E])
	if !ok {
		return false
	}
	_, ok = ec.known[tag]
	return ok
}
