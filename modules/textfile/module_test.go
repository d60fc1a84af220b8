package textfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coreloop/resdepot/internal/property"
	"github.com/coreloop/resdepot/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Initialize(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	// --- Act ---
	var doc Document
	err := doc.Initialize(context.Background(), property.List{property.String("filename", path)})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "hello world", doc.Text())
	assert.Equal(t, 11, doc.Len())
	assert.Equal(t, path, doc.Path())
}

func TestDocument_InitializeMissingFile(t *testing.T) {
	t.Parallel()

	var doc Document
	err := doc.Initialize(context.Background(), property.List{
		property.String("filename", filepath.Join(t.TempDir(), "nope.txt")),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "reading")
}

func TestDocument_InitializeMissingProperty(t *testing.T) {
	t.Parallel()

	var doc Document
	err := doc.Initialize(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorContains(t, err, `missing required property "filename"`)
}

func TestDocument_AppendVisibleThroughSharedHandles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("base"), 0o644))

	r := registry.New()
	ctx := context.Background()

	writer, err := registry.Create[Document](ctx, r, "note", property.List{property.String("filename", path)})
	require.NoError(t, err)
	reader, ok := registry.Get[Document](r, "note")
	require.True(t, ok)

	// --- Act ---
	writer.AppendText("+tail")

	// --- Assert ---
	assert.Equal(t, "base+tail", reader.Text())

	// The backing file is untouched.
	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "base", string(onDisk))
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	id := r.TypeIDFromName("textfile.Document")
	require.NotZero(t, id)

	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("via id"), 0o644))

	res, err := r.CreateByID(context.Background(), id, "note", property.List{property.String("filename", path)})
	require.NoError(t, err)
	doc, ok := res.(*Document)
	require.True(t, ok)
	assert.Equal(t, "via id", doc.Text())
}
