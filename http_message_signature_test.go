package sfv_test

import (
	"testing"

	"github.com/kyori19/net-http-structured-field-values"
	"github.com/stretchr/testify/require"
)

// TestHTTPMessageSignatureComponentIdentifiers exercises component
// identifiers in the shape HTTP Message Signatures (RFC 9421) uses them: a
// quoted String Item carrying boolean or string parameters, inside a List
// field value. Canonical serialization never inserts a space after ';', so
// this also doubles as a check that the parameter-spacing rule this library
// always applies happens to match RFC 9421's wire format.
func TestHTTPMessageSignatureComponentIdentifiers(t *testing.T) {
	tests := []string{
		`"@method";req`,
		`"@authority";req`,
		`"@query-param";name="Pet"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(input))
			require.NoError(t, err, "Parse failed for input: %s", input)
			require.Equal(t, 1, list.Len())

			marshaled, err := sfv.Marshal(list)
			require.NoError(t, err)
			require.Equal(t, input, string(marshaled))
		})
	}
}

// TestInnerListWithHTTPMessageSignatureComponents tests inner lists
// containing HTTP Message Signature component identifiers, as used for the
// "@signature-params" covered-components list.
func TestInnerListWithHTTPMessageSignatureComponents(t *testing.T) {
	input := `("@status" "content-type" "@method";req "@authority";req)`

	list, err := sfv.ParseList([]byte(input))
	require.NoError(t, err, "Parse failed for input: %s", input)
	require.Equal(t, 1, list.Len())

	member, ok := list.Get(0)
	require.True(t, ok)
	require.True(t, member.IsInnerList())

	marshaled, err := sfv.Marshal(list)
	require.NoError(t, err)
	require.Equal(t, input, string(marshaled))
}

// TestComponentIdentifierStructure verifies that parsing correctly extracts
// component names and parameters for HTTP Message Signature component
// identifiers.
func TestComponentIdentifierStructure(t *testing.T) {
	tests := []struct {
		name              string
		input             string
		expectedComponent string
		expectedParams    map[string]any
	}{
		{
			name:              "Component with req parameter",
			input:             `"@method";req`,
			expectedComponent: "@method",
			expectedParams:    map[string]any{"req": true},
		},
		{
			name:              "Component with string parameter",
			input:             `"@query-param";name="Pet"`,
			expectedComponent: "@query-param",
			expectedParams:    map[string]any{"name": "Pet"},
		},
		{
			name:              "Component with multiple parameters",
			input:             `"content-type";req;sf`,
			expectedComponent: "content-type",
			expectedParams:    map[string]any{"req": true, "sf": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := sfv.ParseList([]byte(tt.input))
			require.NoError(t, err, "Parse failed for input: %s", tt.input)
			require.Equal(t, 1, list.Len())

			item, ok := list.Get(0)
			require.True(t, ok)

			var componentName string
			require.NoError(t, item.GetValue(&componentName), "should extract component name")
			require.Equal(t, tt.expectedComponent, componentName)

			params := item.Parameters()
			require.NotNil(t, params)

			for key, expected := range tt.expectedParams {
				switch expected := expected.(type) {
				case bool:
					var actual bool
					require.NoError(t, params.Get(key, &actual), "should extract boolean value for param %q", key)
					require.Equal(t, expected, actual)
				case string:
					var actual string
					require.NoError(t, params.Get(key, &actual), "should extract string value for param %q", key)
					require.Equal(t, expected, actual)
				}
			}
		})
	}
}
