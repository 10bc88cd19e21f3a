// Package submission parses XML form submissions produced by ODK/OpenRosa
// style data collection clients into a structured, flattened, and typed
// representation.
//
// A submission is an XML document whose element tree mirrors a form's
// question hierarchy. [Parse] transforms it into an ordered nested [Value]
// tree, computes a flat xpath-keyed view of that tree, applies per-field
// numeric coercion, decodes geopoint fields, extracts the submission
// identity (root name, UUID, deprecation chain, submission date, document
// attributes), and hashes the raw input:
//
//	result, err := submission.Parse(xml,
//	    submission.WithRepeats("kids/kids_details"),
//	    submission.WithNumericFields("age"),
//	    submission.WithGeoFields("gps"),
//	)
//
// Parse is a pure function of its arguments: it keeps no global state, never
// mutates its result after returning, and is safe to call concurrently from
// multiple goroutines.
//
// Several behaviors intentionally reproduce long-standing historical rules and
// should not be "fixed": a CDATA section anywhere under an element replaces
// all of its sibling content, duplicate attributes keep the first occurrence
// in pre-order, repeated sibling elements are promoted to lists even when
// not declared as repeats, and a geopoint that fails to decode stops all
// further geopoint extraction.
package submission
