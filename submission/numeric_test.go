package submission_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onaio/onadata/submission"
)

func TestCoerce(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  submission.Value
	}{
		"integer": {
			input: "23",
			want:  submission.IntValue(23),
		},
		"negative integer": {
			input: "-5",
			want:  submission.IntValue(-5),
		},
		"zero": {
			input: "0",
			want:  submission.IntValue(0),
		},
		"float": {
			input: "1.25",
			want:  submission.FloatValue(1.25),
		},
		"negative float": {
			input: "-1.2836198",
			want:  submission.FloatValue(-1.2836198),
		},
		"exponent": {
			input: "1e3",
			want:  submission.FloatValue(1000),
		},
		"nan maps to integer zero": {
			input: "NaN",
			want:  submission.IntValue(0),
		},
		"lowercase nan maps to integer zero": {
			input: "nan",
			want:  submission.IntValue(0),
		},
		"string": {
			input: "hello",
			want:  submission.StringValue("hello"),
		},
		"empty string": {
			input: "",
			want:  submission.StringValue(""),
		},
		"gps string": {
			input: "-1.2836198 36.8795437 0.0 1044.0",
			want:  submission.StringValue("-1.2836198 36.8795437 0.0 1044.0"),
		},
		"uuid string": {
			input: "uuid:729f173c688e482486a48661700455ff",
			want:  submission.StringValue("uuid:729f173c688e482486a48661700455ff"),
		},
		"hex float form stays a string": {
			input: "0x1p-2",
			want:  submission.StringValue("0x1p-2"),
		},
		"digit separators stay a string": {
			input: "1_000",
			want:  submission.StringValue("1_000"),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := submission.Coerce(tc.input)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoerceInfinityStaysFloat(t *testing.T) {
	t.Parallel()

	// NaN maps to integer zero; infinities do not share that contract.
	got := submission.Coerce("Inf")
	assert.Equal(t, submission.KindFloat, got.Kind)
	assert.True(t, math.IsInf(got.Float, 1))

	got = submission.Coerce("-Inf")
	assert.Equal(t, submission.KindFloat, got.Kind)
	assert.True(t, math.IsInf(got.Float, -1))
}

func TestCoerceIdempotent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"23", "1.25", "NaN", "hello", ""} {
		once := submission.Coerce(input)
		twice := submission.Coerce(once.String())
		assert.Equal(t, once, twice, "input %q", input)
	}
}
