package property

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type docSettings struct {
	Filename string  `prop:"filename"`
	Retries  int64   `prop:"retries,optional"`
	Ratio    float64 `prop:"ratio,optional"`
	Verbose  bool    `prop:"verbose,optional"`
	Ignored  string
}

// TestDecodeInto_Full verifies a complete decode across all four kinds.
func TestDecodeInto_Full(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	props := List{
		String("filename", "notes.txt"),
		Int("retries", 5),
		Float("ratio", 0.25),
		Bool("verbose", true),
	}
	var out docSettings

	// --- Act ---
	err := DecodeInto(context.Background(), props, &out)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", out.Filename)
	assert.Equal(t, int64(5), out.Retries)
	assert.InDelta(t, 0.25, out.Ratio, 1e-9)
	assert.True(t, out.Verbose)
	assert.Empty(t, out.Ignored, "untagged fields must be left alone")
}

// TestDecodeInto_OptionalMissing verifies missing optional properties keep
// the field's existing value.
func TestDecodeInto_OptionalMissing(t *testing.T) {
	t.Parallel()

	out := docSettings{Retries: 9}
	err := DecodeInto(context.Background(), List{String("filename", "x")}, &out)

	require.NoError(t, err)
	assert.Equal(t, int64(9), out.Retries)
}

// TestDecodeInto_RequiredMissing verifies the error names the absent
// property.
func TestDecodeInto_RequiredMissing(t *testing.T) {
	t.Parallel()

	var out docSettings
	err := DecodeInto(context.Background(), List{Int("retries", 1)}, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required property "filename"`)
}

// TestDecodeInto_Conversions verifies cty's conversion rules apply between
// the stored kind and the field type.
func TestDecodeInto_Conversions(t *testing.T) {
	t.Parallel()

	t.Run("int property into float field", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Ratio float64 `prop:"ratio"`
		}
		err := DecodeInto(context.Background(), List{Int("ratio", 3)}, &out)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, out.Ratio, 1e-9)
	})

	t.Run("int property into plain int field", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Count int `prop:"count"`
		}
		err := DecodeInto(context.Background(), List{Int("count", 12)}, &out)
		require.NoError(t, err)
		assert.Equal(t, 12, out.Count)
	})

	t.Run("number property into string field", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Label string `prop:"label"`
		}
		err := DecodeInto(context.Background(), List{Int("label", 404)}, &out)
		require.NoError(t, err)
		assert.Equal(t, "404", out.Label)
	})

	t.Run("string property into int field fails", func(t *testing.T) {
		t.Parallel()
		var out struct {
			Count int64 `prop:"count"`
		}
		err := DecodeInto(context.Background(), List{String("count", "oops")}, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `property "count"`)
	})
}

// TestDecodeInto_BadTarget verifies target validation.
func TestDecodeInto_BadTarget(t *testing.T) {
	t.Parallel()

	err := DecodeInto(context.Background(), List{}, docSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-nil struct pointer")

	var nilPtr *docSettings
	err = DecodeInto(context.Background(), List{}, nilPtr)
	require.Error(t, err)
}

// TestDecodeInto_UnexportedTagged verifies a prop tag on an unexported
// field is reported instead of silently skipped.
func TestDecodeInto_UnexportedTagged(t *testing.T) {
	t.Parallel()

	var out struct {
		hidden string `prop:"hidden"`
	}
	err := DecodeInto(context.Background(), List{String("hidden", "v")}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexported field")
	_ = out.hidden
}
