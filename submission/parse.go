package submission

import (
	"crypto/sha256"
	"encoding/hex"
)

// parseConfig collects the per-call parsing parameters.
type parseConfig struct {
	repeats   map[string]struct{}
	numeric   map[string]struct{}
	geoKeys   []string
	encrypted bool
	roundTrip bool
}

func (c *parseConfig) isRepeat(xpath string) bool {
	_, ok := c.repeats[xpath]

	return ok
}

// Option configures a [Parse] call.
type Option func(*parseConfig)

// WithRepeats declares repeat-group xpaths (abbreviated, root name
// stripped). A declared repeat is always list-typed, even with a single
// occurrence.
func WithRepeats(xpaths ...string) Option {
	return func(c *parseConfig) {
		for _, x := range xpaths {
			c.repeats[x] = struct{}{}
		}
	}
}

// WithEncrypted marks the submission as encrypted: every child element
// named "media" becomes list-typed regardless of repeat declarations.
func WithEncrypted(encrypted bool) Option {
	return func(c *parseConfig) {
		c.encrypted = encrypted
	}
}

// WithNumericFields declares the keys whose string leaves are run through
// [Coerce] in the exported views. The flat view matches a leaf by its full
// flat key (its abbreviated xpath); the nested view matches a leaf by its
// own dict key only, as described on [Parse].
func WithNumericFields(xpaths ...string) Option {
	return func(c *parseConfig) {
		for _, x := range xpaths {
			c.numeric[x] = struct{}{}
		}
	}
}

// WithGeoFields declares the keys searched for geopoint values, in order.
func WithGeoFields(keys ...string) Option {
	return func(c *parseConfig) {
		c.geoKeys = append(c.geoKeys, keys...)
	}
}

// WithRoundTripValidation runs the document through round-trip safety
// validation before parsing. Documents that would mutate when re-serialized
// are rejected as malformed. Off by default.
func WithRoundTripValidation(validate bool) Option {
	return func(c *parseConfig) {
		c.roundTrip = validate
	}
}

// Result is everything extracted from one submission.
type Result struct {
	// Dict is the nested tree wrapped in its root name:
	// {"tutorial": {...}}. Nil when the root element has no content.
	Dict *Value `json:"dict"`
	// FlatDict is the ordered xpath-keyed flat view.
	FlatDict FlatDict `json:"flat_dict"`
	// Attributes are the document attributes after the entity-skip and
	// first-wins rules, in pre-order.
	Attributes []Attr `json:"attributes"`
	// RootName is the root element's name, namespace prefix included.
	RootName string `json:"root_node_name"`
	// UUID is the submission UUID with any "uuid:" prefix stripped.
	// Empty when absent.
	UUID string `json:"uuid,omitempty"`
	// DeprecatedUUID is the superseded submission's UUID, prefix stripped.
	// Empty when absent.
	DeprecatedUUID string `json:"deprecated_uuid,omitempty"`
	// SubmissionDate is the first non-empty submissionDate entry in
	// Attributes, which is the root's when the root carries one. Empty when
	// absent.
	SubmissionDate string `json:"submission_date,omitempty"`
	// GeoPoints are the decoded geopoints, in search order.
	GeoPoints []Point `json:"geom_points"`
	// Checksum is the lowercase hex SHA-256 of the raw input.
	Checksum string `json:"checksum"`
}

// Parse converts one XML submission into a [Result].
//
// The input is cleaned (inter-tag whitespace removed), read into a document
// tree, and folded into the nested and flat views. Numeric coercion applies
// only to leaves selected by [WithNumericFields]: in the nested view a leaf
// is selected by its own key (items of a list by the list's key), in the
// flat view by its full flat key. The checksum always covers the raw input
// bytes, before cleaning.
//
// Errors wrap [ErrMalformedXML] or [ErrNoRootElement]; geopoint decode
// failures are not errors (the point list is truncated instead).
func Parse(xml string, opts ...Option) (*Result, error) {
	cfg := &parseConfig{
		repeats: make(map[string]struct{}),
		numeric: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	root, err := readDocument(Clean(xml), cfg.roundTrip)
	if err != nil {
		return nil, err
	}

	attrs := filterAttributes(collectAttributes(root, nil))

	result := &Result{
		Attributes:     attrs,
		RootName:       root.FullTag(),
		UUID:           findUUID(root, attrs),
		DeprecatedUUID: findDeprecatedUUID(root),
		SubmissionDate: findSubmissionDate(attrs),
		Checksum:       checksum(xml),
	}

	inner, ok := elementValue(root, cfg, nil)
	if !ok {
		return result, nil
	}

	tree := DictValue(Pair{Key: result.RootName, Value: inner})

	result.GeoPoints = extractGeoPoints(tree, cfg.geoKeys)

	exported := exportValue(tree, cfg.numeric, "")
	result.Dict = &exported
	result.FlatDict = exportFlat(flattenTree(tree), cfg.numeric)

	return result, nil
}

// exportValue produces the coerced view of a tree. currentKey is the key
// the value sits under; list items inherit the list's key.
func exportValue(v Value, numeric map[string]struct{}, currentKey string) Value {
	if len(numeric) == 0 {
		return v
	}

	switch v.Kind {
	case KindString:
		if _, ok := numeric[currentKey]; ok {
			return Coerce(v.Str)
		}

		return v
	case KindDict:
		pairs := make([]Pair, 0, len(v.Pairs))

		for _, p := range v.Pairs {
			pairs = append(pairs, Pair{Key: p.Key, Value: exportValue(p.Value, numeric, p.Key)})
		}

		return DictValue(pairs...)
	case KindList:
		items := make([]Value, 0, len(v.Items))

		for _, item := range v.Items {
			items = append(items, exportValue(item, numeric, currentKey))
		}

		return ListValue(items...)
	}

	return v
}

// exportFlat coerces the flat view; each entry's key is its full flat key,
// so a numeric field inside a repeat matches by its complete xpath.
func exportFlat(flat FlatDict, numeric map[string]struct{}) FlatDict {
	if len(numeric) == 0 {
		return flat
	}

	out := make(FlatDict, 0, len(flat))

	for _, p := range flat {
		out = append(out, Pair{Key: p.Key, Value: exportValue(p.Value, numeric, p.Key)})
	}

	return out
}

// checksum returns the lowercase hex SHA-256 of s.
func checksum(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}
