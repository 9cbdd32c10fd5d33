package sfv_test

import (
	"testing"

	"github.com/kyori19/net-http-structured-field-values"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerList(t *testing.T) {
	tests := []struct {
		input    string
		expected []int64
	}{
		{"123", []int64{123}},
		{"123, 456", []int64{123, 456}},
		{"-999", []int64{-999}},
		{"0", []int64{0}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.IntegerType, item.Type())

				var actual int64
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseDecimalList(t *testing.T) {
	tests := []struct {
		input    string
		expected []float64
	}{
		{"123.456", []float64{123.456}},
		{"123.456, 789.123", []float64{123.456, 789.123}},
		{"-123.456", []float64{-123.456}},
		{"0.0", []float64{0.0}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.DecimalType, item.Type())

				var actual float64
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseStringList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{`"hello"`, []string{"hello"}},
		{`"hello", "world"`, []string{"hello", "world"}},
		{`"hello \"world\""`, []string{`hello "world"`}},
		{`""`, []string{""}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.StringType, item.Type())

				var actual string
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseTokenList(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"foo", []string{"foo"}},
		{"foo, bar", []string{"foo", "bar"}},
		{"*", []string{"*"}},
		{"foo123", []string{"foo123"}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.TokenType, item.Type())

				var actual string
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseByteSequenceList(t *testing.T) {
	tests := []struct {
		input    string
		expected [][]byte
	}{
		{":aGVsbG8=:", [][]byte{[]byte("hello")}},
		{":aGVsbG8=:, :d29ybGQ=:", [][]byte{[]byte("hello"), []byte("world")}},
		{"::", [][]byte{{}}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.ByteSequenceType, item.Type())

				var actual []byte
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseBooleanList(t *testing.T) {
	tests := []struct {
		input    string
		expected []bool
	}{
		{"?1", []bool{true}},
		{"?0", []bool{false}},
		{"?1, ?0", []bool{true, false}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, len(test.expected), list.Len())

			for i, expected := range test.expected {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, sfv.BooleanType, item.Type())

				var actual bool
				require.NoError(t, item.GetValue(&actual))
				require.Equal(t, expected, actual)
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseByteSequenceAcceptsMissingPadding(t *testing.T) {
	item, err := sfv.ParseItem([]byte(":aGVsbG8:"))
	require.NoError(t, err)
	require.Equal(t, sfv.ByteSequenceType, item.Type())

	var actual []byte
	require.NoError(t, item.GetValue(&actual))
	require.Equal(t, []byte("hello"), actual)

	// Serialization always emits the padded form.
	marshaled, err := sfv.Marshal(item)
	require.NoError(t, err)
	require.Equal(t, ":aGVsbG8=:", string(marshaled))
}

func TestParseMixedList(t *testing.T) {
	tests := []struct {
		input         string
		expectedTypes []sfv.Type
		expectedLen   int
	}{
		{`123, "hello", foo, :aGVsbG8=:, ?1`, []sfv.Type{sfv.IntegerType, sfv.StringType, sfv.TokenType, sfv.ByteSequenceType, sfv.BooleanType}, 5},
		{`123.456, "world"`, []sfv.Type{sfv.DecimalType, sfv.StringType}, 2},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Equal(t, test.expectedLen, list.Len())

			for i, expectedType := range test.expectedTypes {
				item, ok := list.Get(i)
				require.True(t, ok)
				require.Equal(t, expectedType, item.Type())
			}

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseEmptyList(t *testing.T) {
	list, err := sfv.ParseList([]byte(""))
	require.NoError(t, err)
	require.Equal(t, 0, list.Len())

	marshaled, err := sfv.Marshal(list)
	require.NoError(t, err)
	require.Equal(t, "", string(marshaled))
}

func TestParseInnerList(t *testing.T) {
	tests := []struct {
		input       string
		description string
	}{
		{"(1 2 3)", "simple inner list with integers"},
		{"(1 2), (3 4)", "multiple inner lists"},
		{"()", "empty inner list"},
		{`("hello" "world")`, "inner list with strings"},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(test.input))
			require.NoError(t, err)
			require.Greater(t, list.Len(), 0)

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, test.input, string(marshaled))
		})
	}
}

func TestParseListRejectsTrailingComma(t *testing.T) {
	_, err := sfv.ParseList([]byte("1, 2,"))
	require.Error(t, err)

	var parseErr *sfv.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseItemWithParameters(t *testing.T) {
	item, err := sfv.ParseItem([]byte(`5; foo=bar`))
	require.NoError(t, err)
	require.Equal(t, sfv.IntegerType, item.Type())

	var token string
	require.NoError(t, item.Parameters().Get("foo", &token))
	require.Equal(t, "bar", token)

	marshaled, err := sfv.Marshal(item)
	require.NoError(t, err)
	require.Equal(t, `5;foo=bar`, string(marshaled))
}

func TestParseDictionary(t *testing.T) {
	dict, err := sfv.ParseDictionary([]byte(`a=1, b, c=?0;d=1`))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, dict.Keys())

	var a int64
	require.NoError(t, dict.GetValue("a", &a))
	require.Equal(t, int64(1), a)

	var b bool
	require.NoError(t, dict.GetValue("b", &b))
	require.True(t, b)

	var c bool
	require.NoError(t, dict.GetValue("c", &c))
	require.False(t, c)

	cItem, ok := dict.Get("c")
	require.True(t, ok)
	var d int64
	require.NoError(t, cItem.Parameters().Get("d", &d))
	require.Equal(t, int64(1), d)

	marshaled, err := sfv.Marshal(dict)
	require.NoError(t, err)
	require.Equal(t, `a=1, b, c=?0;d=1`, string(marshaled))
}

func TestParseDictionaryDuplicateKeyLastWriteWins(t *testing.T) {
	dict, err := sfv.ParseDictionary([]byte(`a=1, b=2, a=3`))
	require.NoError(t, err)

	// The repeated key moves to the position of its last occurrence and
	// carries the last value.
	require.Equal(t, []string{"b", "a"}, dict.Keys())

	var a int64
	require.NoError(t, dict.GetValue("a", &a))
	require.Equal(t, int64(3), a)

	var b int64
	require.NoError(t, dict.GetValue("b", &b))
	require.Equal(t, int64(2), b)

	marshaled, err := sfv.Marshal(dict)
	require.NoError(t, err)
	require.Equal(t, "b=2, a=3", string(marshaled))
}
