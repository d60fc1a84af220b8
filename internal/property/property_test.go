package property

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// TestConstructors_RoundTrip verifies each constructor stores the value
// under the right kind and the matching accessor returns it.
func TestConstructors_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		p := Bool("enabled", true)
		assert.Equal(t, "enabled", p.Name())
		assert.Equal(t, KindBool, p.Kind())
		v, ok := p.BoolVal()
		require.True(t, ok)
		assert.True(t, v)
	})

	t.Run("int", func(t *testing.T) {
		t.Parallel()
		p := Int("count", 42)
		assert.Equal(t, KindInt, p.Kind())
		v, ok := p.IntVal()
		require.True(t, ok)
		assert.Equal(t, int64(42), v)
	})

	t.Run("float", func(t *testing.T) {
		t.Parallel()
		p := Float("ratio", 0.5)
		assert.Equal(t, KindFloat, p.Kind())
		v, ok := p.FloatVal()
		require.True(t, ok)
		assert.InDelta(t, 0.5, v, 1e-9)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		p := String("path", "assets/readme.txt")
		assert.Equal(t, KindString, p.Kind())
		v, ok := p.StringVal()
		require.True(t, ok)
		assert.Equal(t, "assets/readme.txt", v)
	})
}

// TestZeroProperty verifies the zero value is inert and identifiable.
func TestZeroProperty(t *testing.T) {
	t.Parallel()

	var p Property
	assert.Equal(t, KindInvalid, p.Kind())
	assert.Empty(t, p.Name())
	_, ok := p.StringVal()
	assert.False(t, ok)
}

// TestAccessors_WrongKind verifies that asking a property for a kind it
// does not hold reports false instead of a bogus value.
func TestAccessors_WrongKind(t *testing.T) {
	t.Parallel()

	p := Int("count", 7)

	_, ok := p.BoolVal()
	assert.False(t, ok)
	_, ok = p.FloatVal()
	assert.False(t, ok)
	_, ok = p.StringVal()
	assert.False(t, ok)

	v, ok := p.IntVal()
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
}

// TestFromCty_Classification verifies how parsed cty literals map onto
// property kinds.
func TestFromCty_Classification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		val      cty.Value
		wantKind Kind
	}{
		{name: "bool", val: cty.True, wantKind: KindBool},
		{name: "integer number", val: cty.NumberIntVal(9), wantKind: KindInt},
		{name: "whole float number", val: cty.NumberFloatVal(42.0), wantKind: KindInt},
		{name: "fractional number", val: cty.NumberFloatVal(2.5), wantKind: KindFloat},
		{name: "largest int64", val: cty.NumberIntVal(math.MaxInt64), wantKind: KindInt},
		{name: "whole number beyond int64", val: cty.MustParseNumberVal("18446744073709551616"), wantKind: KindFloat},
		{name: "whole number below int64", val: cty.MustParseNumberVal("-9223372036854775809"), wantKind: KindFloat},
		{name: "string", val: cty.StringVal("hi"), wantKind: KindString},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := FromCty("v", tc.val)
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, p.Kind())
		})
	}
}

// TestFromCty_OversizedWholeNumber verifies that a whole number too large
// for int64 lands on the float kind so its value stays reachable; as a
// KindInt it would overflow every IntVal call.
func TestFromCty_OversizedWholeNumber(t *testing.T) {
	t.Parallel()

	p, err := FromCty("huge", cty.MustParseNumberVal("18446744073709551616"))
	require.NoError(t, err)
	require.Equal(t, KindFloat, p.Kind())

	_, ok := p.IntVal()
	assert.False(t, ok)

	v, ok := p.FloatVal()
	require.True(t, ok)
	assert.InDelta(t, 1.8446744073709552e19, v, 1.0)
}

// TestFromCty_Rejections verifies that null and non-scalar values are
// refused with a descriptive error.
func TestFromCty_Rejections(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		val  cty.Value
	}{
		{name: "null", val: cty.NullVal(cty.String)},
		{name: "unknown", val: cty.UnknownVal(cty.Number)},
		{name: "list", val: cty.ListVal([]cty.Value{cty.StringVal("a")})},
		{name: "object", val: cty.ObjectVal(map[string]cty.Value{"k": cty.True})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromCty("bad", tc.val)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `property "bad"`)
		})
	}
}

// TestList_Lookup verifies ordered lookup semantics.
func TestList_Lookup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	list := List{
		String("filename", "a.txt"),
		Int("retries", 3),
		String("filename", "shadowed.txt"),
	}

	// --- Act & Assert ---
	p, ok := list.Get("filename")
	require.True(t, ok)
	v, _ := p.StringVal()
	assert.Equal(t, "a.txt", v, "Get should return the first match in document order")

	_, ok = list.Get("missing")
	assert.False(t, ok)

	assert.True(t, list.Has("retries"))
	assert.False(t, list.Has("missing"))
	assert.Equal(t, []string{"filename", "retries", "filename"}, list.Names())
}
