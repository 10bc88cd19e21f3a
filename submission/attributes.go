package submission

import (
	"strings"

	"github.com/beevik/etree"
)

// Attr is a single XML attribute kept on a [Result], in pre-order document
// position.
type Attr struct {
	Key   string
	Value string
}

// attrTriple is an attribute paired with the name of the element carrying
// it, before filtering.
type attrTriple struct {
	key     string
	value   string
	element string
}

// collectAttributes walks el pre-order and appends every attribute it
// finds, tagged with the owning element's name.
func collectAttributes(el *etree.Element, out []attrTriple) []attrTriple {
	name := el.FullTag()

	for _, a := range el.Attr {
		out = append(out, attrTriple{key: a.FullKey(), value: a.Value, element: name})
	}

	for _, child := range el.ChildElements() {
		out = collectAttributes(child, out)
	}

	return out
}

// filterAttributes applies the two legacy rules: attributes owned by an
// element named "entity" are dropped, and for duplicate keys the first
// occurrence in pre-order wins. A nested duplicate can therefore never
// override a root attribute.
func filterAttributes(raw []attrTriple) []Attr {
	attrs := make([]Attr, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, t := range raw {
		if t.element == "entity" {
			continue
		}

		if _, dup := seen[t.key]; dup {
			continue
		}

		seen[t.key] = struct{}{}
		attrs = append(attrs, Attr{Key: t.key, Value: t.value})
	}

	return attrs
}

// findUUID extracts the submission UUID from meta/instanceID (or the
// orx-prefixed variants), falling back to an instanceID attribute. Tag
// matching is case-insensitive; the "uuid:" prefix check is not — the
// asymmetry is deliberate and preserved for compatibility.
func findUUID(root *etree.Element, attrs []Attr) string {
	if v, ok := metaValue(root, "instanceid"); ok {
		return stripUUIDPrefix(v)
	}

	for _, a := range attrs {
		if a.Key == "instanceID" {
			return stripUUIDPrefix(a.Value)
		}
	}

	return ""
}

// findDeprecatedUUID extracts meta/deprecatedID. Unlike the UUID there is
// no attribute fallback.
func findDeprecatedUUID(root *etree.Element) string {
	if v, ok := metaValue(root, "deprecatedid"); ok {
		return stripUUIDPrefix(v)
	}

	return ""
}

// findSubmissionDate returns the submissionDate attribute, if present and
// non-empty.
func findSubmissionDate(attrs []Attr) string {
	for _, a := range attrs {
		if a.Key == "submissionDate" && a.Value != "" {
			return a.Value
		}
	}

	return ""
}

// metaValue scans the root's direct children for a meta (or orx:meta)
// element and returns the trimmed text of its tag (or orx:tag) child.
// tag must be given lowercased.
func metaValue(root *etree.Element, tag string) (string, bool) {
	for _, child := range root.ChildElements() {
		name := strings.ToLower(child.FullTag())
		if name != "meta" && name != "orx:meta" {
			continue
		}

		for _, mc := range child.ChildElements() {
			mcName := strings.ToLower(mc.FullTag())
			if mcName != tag && mcName != "orx:"+tag {
				continue
			}

			if text, ok := firstCharData(mc); ok {
				return strings.TrimSpace(text), true
			}
		}
	}

	return "", false
}

// firstCharData returns the first text or CDATA child of el.
func firstCharData(el *etree.Element) (string, bool) {
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			return cd.Data, true
		}
	}

	return "", false
}

// stripUUIDPrefix removes a leading "uuid:" and reports the remainder.
// An empty remainder (or empty input) means the UUID is absent.
func stripUUIDPrefix(s string) string {
	if rest, ok := strings.CutPrefix(s, "uuid:"); ok {
		return rest
	}

	return s
}
