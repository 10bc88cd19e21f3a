package submission

import (
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Value].
type Kind int

const (
	// KindInvalid is the zero Kind; it never appears in a parsed tree.
	KindInvalid Kind = iota
	// KindString is a leaf holding the element's text exactly as written.
	KindString
	// KindInt is a coerced integer leaf. It only appears in export views
	// produced with [WithNumericFields].
	KindInt
	// KindFloat is a coerced floating point leaf. It only appears in export
	// views produced with [WithNumericFields].
	KindFloat
	// KindDict is an ordered sequence of key/value pairs. Insertion order is
	// document order and is significant.
	KindDict
	// KindList is an ordered sequence of values: a declared repeat group, an
	// auto-promoted run of same-named siblings, or encrypted media parts.
	KindList
)

// Value is one node of the parsed submission tree. It is a closed sum:
// exactly the fields implied by Kind are meaningful, all others are zero.
// Values are never shared between trees and never mutated after [Parse]
// returns.
type Value struct {
	// Kind selects the variant.
	Kind Kind
	// Str holds the text for KindString.
	Str string
	// Int holds the value for KindInt.
	Int int64
	// Float holds the value for KindFloat.
	Float float64
	// Pairs holds the ordered entries for KindDict.
	Pairs []Pair
	// Items holds the ordered elements for KindList.
	Items []Value
}

// Pair is a single ordered entry of a KindDict [Value].
type Pair struct {
	Key   string
	Value Value
}

// StringValue returns a KindString leaf.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IntValue returns a KindInt leaf.
func IntValue(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

// FloatValue returns a KindFloat leaf.
func FloatValue(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// DictValue returns a KindDict value holding the given pairs in order.
func DictValue(pairs ...Pair) Value {
	return Value{Kind: KindDict, Pairs: pairs}
}

// ListValue returns a KindList value holding the given items in order.
func ListValue(items ...Value) Value {
	return Value{Kind: KindList, Items: items}
}

// Get returns the value under key in a KindDict. The second return is false
// when the key is absent or the receiver is not a dict.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindDict {
		return Value{}, false
	}

	for _, p := range v.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}

	return Value{}, false
}

// String renders the value for display. Leaves render as their content,
// dicts and lists render in a compact JSON-like form. This implements
// [fmt.Stringer]; it is not a serialization format.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindDict:
		var sb strings.Builder

		sb.WriteString("{")

		for i, p := range v.Pairs {
			if i > 0 {
				sb.WriteString(",")
			}

			sb.WriteString(strconv.Quote(p.Key))
			sb.WriteString(":")
			sb.WriteString(p.Value.String())
		}

		sb.WriteString("}")

		return sb.String()
	case KindList:
		var sb strings.Builder

		sb.WriteString("[")

		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(",")
			}

			sb.WriteString(item.String())
		}

		sb.WriteString("]")

		return sb.String()
	}

	return ""
}

// MarshalJSON encodes the value as JSON, preserving dict entry order.
// String leaves become JSON strings, coerced leaves become JSON numbers,
// dicts become objects, and lists become arrays.
func (v Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder

	v.writeJSON(&sb)

	return []byte(sb.String()), nil
}

func (v Value) writeJSON(sb *strings.Builder) {
	switch v.Kind {
	case KindString:
		sb.WriteString(quoteJSON(v.Str))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case KindDict:
		sb.WriteString("{")

		for i, p := range v.Pairs {
			if i > 0 {
				sb.WriteString(",")
			}

			sb.WriteString(quoteJSON(p.Key))
			sb.WriteString(":")
			p.Value.writeJSON(sb)
		}

		sb.WriteString("}")
	case KindList:
		sb.WriteString("[")

		for i, item := range v.Items {
			if i > 0 {
				sb.WriteString(",")
			}

			item.writeJSON(sb)
		}

		sb.WriteString("]")
	default:
		sb.WriteString("null")
	}
}

// quoteJSON escapes s as a JSON string literal. strconv.Quote emits Go
// escapes that are a superset of JSON for the characters submissions
// contain; control characters and quotes are what matters here.
func quoteJSON(s string) string {
	var sb strings.Builder

	sb.WriteString(`"`)

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				sb.WriteString(`\u`)

				const hexDigits = "0123456789abcdef"

				sb.WriteByte('0')
				sb.WriteByte('0')
				sb.WriteByte(hexDigits[(r>>4)&0xf])
				sb.WriteByte(hexDigits[r&0xf])

				continue
			}

			sb.WriteRune(r)
		}
	}

	sb.WriteString(`"`)

	return sb.String()
}

// FlatDict is the ordered flat view of a submission: keys are abbreviated
// xpaths with the root element name stripped.
type FlatDict []Pair

// Get returns the value under key. The second return is false when the key
// is absent.
func (d FlatDict) Get(key string) (Value, bool) {
	for _, p := range d {
		if p.Key == key {
			return p.Value, true
		}
	}

	return Value{}, false
}

// MarshalJSON encodes the flat view as a JSON object in entry order.
func (d FlatDict) MarshalJSON() ([]byte, error) {
	return Value{Kind: KindDict, Pairs: d}.MarshalJSON()
}
