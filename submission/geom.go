package submission

import "strings"

// Point is a decoded geopoint: the first two tokens of a whitespace
// separated GPS answer.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// extractGeoPoints searches the nested tree for every value stored under
// one of the given keys, in key order, and decodes each string hit as a
// lat/lng pair. The first decode failure stops extraction entirely and
// returns the points accumulated so far; callers rely on the truncation to
// detect malformed geo input.
func extractGeoPoints(dict Value, geoKeys []string) []Point {
	var points []Point

	for _, key := range geoKeys {
		for _, v := range valuesMatchingKey(dict, key) {
			if v.Kind != KindString {
				continue
			}

			parts := strings.Fields(v.Str)
			if len(parts) < 2 {
				continue
			}

			lat, latOK := parseLegacyFloat(parts[0])
			lng, lngOK := parseLegacyFloat(parts[1])

			if !latOK || !lngOK {
				return points
			}

			points = append(points, Point{Lat: lat, Lng: lng})
		}
	}

	return points
}

// valuesMatchingKey recursively collects every value whose enclosing dict
// key equals key. Inside lists, a string item equal to the key itself also
// matches — a quirk of the historical recursive search, preserved because
// downstream consumers depend on the result set.
func valuesMatchingKey(v Value, key string) []Value {
	var results []Value

	switch v.Kind {
	case KindDict:
		if hit, ok := v.Get(key); ok {
			results = append(results, hit)
		}

		for _, p := range v.Pairs {
			switch p.Value.Kind {
			case KindDict:
				results = append(results, valuesMatchingKey(p.Value, key)...)
			case KindList:
				results = append(results, listMatches(p.Value.Items, key)...)
			}
		}
	case KindList:
		results = append(results, listMatches(v.Items, key)...)
	}

	return results
}

func listMatches(items []Value, key string) []Value {
	var results []Value

	for _, item := range items {
		switch item.Kind {
		case KindDict, KindList:
			results = append(results, valuesMatchingKey(item, key)...)
		case KindString:
			if item.Str == key {
				results = append(results, item)
			}
		}
	}

	return results
}
