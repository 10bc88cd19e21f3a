package submission

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// elementValue converts one element into its tree value. The boolean return
// is false when the element contributes nothing (no children, or all
// children elided). ancestors is the chain of element names from the root
// down to el's parent; it feeds abbreviated-xpath computation for repeat
// lookup.
//
// The conversion rules, in order:
//
//  1. No children: contributes nothing.
//  2. A single text or CDATA child: a string leaf.
//  3. A CDATA child anywhere among siblings: a string leaf holding that
//     CDATA content, discarding the siblings. Historical rule: CDATA wins.
//  4. Otherwise, child elements are folded into an ordered dict. A child
//     whose abbreviated xpath is a declared repeat, or named "media" under
//     an encrypted submission, is always list-typed. A repeated child name
//     auto-promotes the existing entry to a list.
func elementValue(el *etree.Element, cfg *parseConfig, ancestors []string) (Value, bool) {
	kids := contentChildren(el)
	if len(kids) == 0 {
		return Value{}, false
	}

	if len(kids) == 1 {
		if cd, ok := kids[0].(*etree.CharData); ok {
			return StringValue(cd.Data), true
		}
	}

	for _, tok := range kids {
		if cd, ok := tok.(*etree.CharData); ok && cd.IsCData() {
			return StringValue(cd.Data), true
		}
	}

	path := append(slices.Clone(ancestors), el.FullTag())

	var pairs []Pair

	for _, tok := range kids {
		child, ok := tok.(*etree.Element)
		if !ok {
			// Text between sibling elements carries no answer.
			continue
		}

		inner, ok := elementValue(child, cfg, path)
		if !ok {
			continue
		}

		name := child.FullTag()
		isList := cfg.isRepeat(childXPath(path, name)) ||
			(cfg.encrypted && name == "media")

		idx := pairIndex(pairs, name)

		switch {
		case idx < 0 && isList:
			pairs = append(pairs, Pair{Key: name, Value: ListValue(inner)})
		case idx < 0:
			pairs = append(pairs, Pair{Key: name, Value: inner})
		case pairs[idx].Value.Kind == KindList:
			pairs[idx].Value.Items = append(pairs[idx].Value.Items, inner)
		default:
			// Auto-promotion: an undeclared repeated sibling turns the
			// existing entry into a list of both occurrences.
			pairs[idx].Value = ListValue(pairs[idx].Value, inner)
		}
	}

	if len(pairs) == 0 {
		return Value{}, false
	}

	return DictValue(pairs...), true
}

// childXPath computes the abbreviated xpath of a child: the ancestor chain
// with the root element name dropped, joined with "/", ending in name.
// Children of the root therefore have xpaths equal to their own name.
func childXPath(ancestors []string, name string) string {
	if len(ancestors) <= 1 {
		return name
	}

	return strings.Join(append(slices.Clone(ancestors[1:]), name), "/")
}

func pairIndex(pairs []Pair, key string) int {
	for i, p := range pairs {
		if p.Key == key {
			return i
		}
	}

	return -1
}
