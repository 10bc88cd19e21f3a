package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onaio/onadata/submission"
	"github.com/onaio/onadata/xmltest"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"strips document padding and indentation": {
			input: "  <?xml version='1.0' ?><root>  \n  <child>text</child>  \n  </root>  ",
			want:  "<?xml version='1.0' ?><root><child>text</child></root>",
		},
		"preserves whitespace inside text": {
			input: "<root><name>Larry\n        Again\n  </name></root>",
			want:  "<root><name>Larry\n        Again\n  </name></root>",
		},
		"keeps whitespace not followed by a tag": {
			input: "<root><name>a >  b</name></root>",
			want:  "<root><name>a >  b</name></root>",
		},
		"drops whitespace between close and open tags": {
			input: xmltest.Doc(
				"<root>",
				"  <a>1</a>",
				"  <b>2</b>",
				"</root>",
			),
			want: "<root><a>1</a><b>2</b></root>",
		},
		"empty input": {
			input: "   ",
			want:  "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := submission.Clean(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	input := xmltest.Doc(
		xmltest.Declaration,
		"<root>",
		"  <name>Larry",
		"        Again",
		"  </name>",
		"</root>",
	)

	once := submission.Clean(input)
	assert.Equal(t, once, submission.Clean(once))
}
