package submission_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onaio/onadata/submission"
)

func TestValueGet(t *testing.T) {
	t.Parallel()

	dict := submission.DictValue(
		submission.Pair{Key: "a", Value: submission.StringValue("1")},
		submission.Pair{Key: "b", Value: submission.IntValue(2)},
	)

	a, ok := dict.Get("a")
	require.True(t, ok)
	assert.Equal(t, submission.StringValue("1"), a)

	_, ok = dict.Get("missing")
	assert.False(t, ok)

	_, ok = submission.StringValue("x").Get("a")
	assert.False(t, ok)
}

func TestValueString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input submission.Value
		want  string
	}{
		"string leaf": {
			input: submission.StringValue("hello"),
			want:  "hello",
		},
		"int leaf": {
			input: submission.IntValue(-5),
			want:  "-5",
		},
		"float leaf": {
			input: submission.FloatValue(1.25),
			want:  "1.25",
		},
		"dict": {
			input: submission.DictValue(
				submission.Pair{Key: "b", Value: submission.StringValue("2")},
				submission.Pair{Key: "a", Value: submission.StringValue("1")},
			),
			want: `{"b":2,"a":1}`,
		},
		"list": {
			input: submission.ListValue(
				submission.StringValue("x"),
				submission.IntValue(1),
			),
			want: "[x,1]",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.input.String())
		})
	}
}

func TestValueMarshalJSON(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input submission.Value
		want  string
	}{
		"string": {
			input: submission.StringValue("hello"),
			want:  `"hello"`,
		},
		"string with newlines": {
			input: submission.StringValue("a\nb\tc"),
			want:  `"a\nb\tc"`,
		},
		"int": {
			input: submission.IntValue(23),
			want:  `23`,
		},
		"float": {
			input: submission.FloatValue(-1.25),
			want:  `-1.25`,
		},
		"dict preserves insertion order": {
			input: submission.DictValue(
				submission.Pair{Key: "z", Value: submission.StringValue("1")},
				submission.Pair{Key: "a", Value: submission.StringValue("2")},
			),
			want: `{"z":"1","a":"2"}`,
		},
		"list": {
			input: submission.ListValue(
				submission.StringValue("a"),
				submission.DictValue(submission.Pair{Key: "k", Value: submission.IntValue(1)}),
			),
			want: `["a",{"k":1}]`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestFlatDictMarshalJSON(t *testing.T) {
	t.Parallel()

	flat := submission.FlatDict{
		{Key: "meta/instanceID", Value: submission.StringValue("uuid:abc")},
		{Key: "age", Value: submission.IntValue(23)},
	}

	got, err := json.Marshal(flat)
	require.NoError(t, err)
	assert.Equal(t, `{"meta/instanceID":"uuid:abc","age":23}`, string(got))
}
