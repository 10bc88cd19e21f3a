package submission

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	xrv "github.com/mattermost/xml-roundtrip-validator"
)

// readDocument parses cleaned XML into an etree document and returns its
// root element. CDATA sections are preserved as distinct tokens and
// namespace prefixes stay part of element and attribute names.
func readDocument(cleaned string, roundTrip bool) (*etree.Element, error) {
	if roundTrip {
		if err := xrv.Validate(strings.NewReader(cleaned)); err != nil {
			return nil, fmt.Errorf("%w: round-trip validation: %w", ErrMalformedXML, err)
		}
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true

	if err := doc.ReadFromString(cleaned); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedXML, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrNoRootElement
	}

	return root, nil
}

// contentChildren returns el's element and character-data children in
// document order, skipping comments, processing instructions, and
// directives.
func contentChildren(el *etree.Element) []etree.Token {
	kids := make([]etree.Token, 0, len(el.Child))

	for _, tok := range el.Child {
		switch tok.(type) {
		case *etree.Element, *etree.CharData:
			kids = append(kids, tok)
		}
	}

	return kids
}
