package reflection

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alphaKind struct{ n int }

type betaKind struct{ s string }

type gammaKind struct{}

// TestIDOf_StableAcrossCalls verifies that repeated lookups for the same
// type always return the identifier issued on first use.
func TestIDOf_StableAcrossCalls(t *testing.T) {
	t.Parallel()

	// --- Act ---
	first := IDOf[alphaKind]()
	second := IDOf[alphaKind]()
	third := IDOf[alphaKind]()

	// --- Assert ---
	require.NotEqual(t, InvalidID, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

// TestIDOf_DistinctTypes verifies that two different types never share an
// identifier.
func TestIDOf_DistinctTypes(t *testing.T) {
	t.Parallel()

	// --- Act ---
	a := IDOf[alphaKind]()
	b := IDOf[betaKind]()

	// --- Assert ---
	require.NotEqual(t, InvalidID, a)
	require.NotEqual(t, InvalidID, b)
	assert.NotEqual(t, a, b)
}

// TestIDOf_PointerUnwrap verifies that a type and a pointer to it resolve
// to the same identifier and name.
func TestIDOf_PointerUnwrap(t *testing.T) {
	t.Parallel()

	// --- Assert ---
	assert.Equal(t, IDOf[alphaKind](), IDOf[*alphaKind]())
	assert.Equal(t, NameOf[alphaKind](), NameOf[*alphaKind]())
}

// TestNameOf_PackageQualified verifies the deterministic naming scheme.
func TestNameOf_PackageQualified(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reflection.alphaKind", NameOf[alphaKind]())
	assert.Equal(t, "reflection.betaKind", NameOf[betaKind]())
}

// TestIDOf_ConcurrentFirstUse hammers the first-use assignment for a single
// type from many goroutines and verifies exactly one id was issued.
func TestIDOf_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	const goroutines = 32
	results := make([]TypeID, goroutines)
	var wg sync.WaitGroup
	start := make(chan struct{})

	// --- Act ---
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			<-start
			results[slot] = IDOf[gammaKind]()
		}(i)
	}
	close(start)
	wg.Wait()

	// --- Assert ---
	require.NotEqual(t, InvalidID, results[0])
	for i := 1; i < goroutines; i++ {
		assert.Equal(t, results[0], results[i], "goroutine %d observed a different id", i)
	}
}

// TestIDOfType_MatchesGenericForm verifies the reflect.Type entry point
// agrees with the generic one.
func TestIDOfType_MatchesGenericForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, IDOf[alphaKind](), IDOfType(TypeFor[alphaKind]()))
	assert.Equal(t, IDOf[betaKind](), IDOfType(TypeFor[*betaKind]()))
}
