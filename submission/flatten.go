package submission

import (
	"slices"
	"strings"
)

// flatEntry is one flattened binding: the full path of keys from the root
// wrapper down, and the value found there.
type flatEntry struct {
	path  []string
	value Value
}

// flattenTree produces the flat view of a parsed tree. The input is the
// top-level wrapper dict ({rootName: {...}}); output keys are "/"-joined
// paths with the root name stripped. Lists become single entries whose
// items are flat dicts keyed by the full (root-stripped) xpaths of their
// descendants, so each repeat instance is self-describing for
// column-oriented storage.
func flattenTree(dict Value) FlatDict {
	if dict.Kind != KindDict {
		return nil
	}

	entries := flattenPairs(dict.Pairs, nil)
	flat := make(FlatDict, 0, len(entries))

	for _, e := range entries {
		flat = append(flat, Pair{Key: joinTail(e.path), Value: e.value})
	}

	return flat
}

func flattenPairs(pairs []Pair, prefix []string) []flatEntry {
	var entries []flatEntry

	for _, p := range pairs {
		path := append(slices.Clone(prefix), p.Key)

		switch p.Value.Kind {
		case KindDict:
			entries = append(entries, flattenPairs(p.Value.Pairs, path)...)
		case KindList:
			repeats := make([]Value, 0, len(p.Value.Items))

			for _, item := range p.Value.Items {
				if item.Kind == KindDict {
					sub := flattenPairs(item.Pairs, path)
					repeat := make([]Pair, 0, len(sub))

					for _, se := range sub {
						repeat = append(repeat, Pair{Key: joinTail(se.path), Value: se.value})
					}

					repeats = append(repeats, DictValue(repeat...))

					continue
				}

				repeats = append(repeats, DictValue(Pair{Key: joinTail(path), Value: item}))
			}

			entries = append(entries, flatEntry{path: path, value: ListValue(repeats...)})
		default:
			entries = append(entries, flatEntry{path: path, value: p.Value})
		}
	}

	return entries
}

// joinTail joins a path with the leading root name dropped.
func joinTail(path []string) string {
	if len(path) <= 1 {
		return ""
	}

	return strings.Join(path[1:], "/")
}
