package manifest

import (
	"context"
	"testing"

	"github.com/coreloop/resdepot/internal/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Merge(t *testing.T) {
	t.Parallel()

	a := &Model{Decls: []*Decl{{TypeName: "t", Name: "one"}}}
	b := &Model{Decls: []*Decl{{TypeName: "t", Name: "two"}, {TypeName: "t", Name: "three"}}}

	a.Merge(b)
	a.Merge(nil)

	require.Len(t, a.Decls, 3)
	assert.Equal(t, "one", a.Decls[0].Name)
	assert.Equal(t, "two", a.Decls[1].Name)
	assert.Equal(t, "three", a.Decls[2].Name)
}

func TestModel_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid model", func(t *testing.T) {
		m := &Model{Decls: []*Decl{
			{TypeName: "textfile.Document", Name: "a", Props: property.List{property.String("filename", "x")}},
			{TypeName: "textfile.Document", Name: "b"},
		}}
		assert.NoError(t, m.Validate())
	})

	t.Run("empty model", func(t *testing.T) {
		assert.NoError(t, (&Model{}).Validate())
	})

	t.Run("empty type name", func(t *testing.T) {
		m := &Model{Decls: []*Decl{{Name: "a", Source: "m.hcl:3"}}}
		err := m.Validate()
		assert.ErrorContains(t, err, "empty type name")
		assert.ErrorContains(t, err, "m.hcl:3")
	})

	t.Run("empty instance name", func(t *testing.T) {
		m := &Model{Decls: []*Decl{{TypeName: "t", Source: "m.hcl:7"}}}
		assert.ErrorContains(t, m.Validate(), "empty instance name")
	})

	t.Run("duplicate instance name", func(t *testing.T) {
		m := &Model{Decls: []*Decl{
			{TypeName: "t", Name: "a", Source: "one.hcl:1"},
			{TypeName: "t", Name: "a", Source: "two.hcl:9"},
		}}
		err := m.Validate()
		assert.ErrorContains(t, err, `duplicate resource name "a"`)
		assert.ErrorContains(t, err, "one.hcl:1")
	})
}

type fakeLoader struct{ exts []string }

func (f *fakeLoader) Load(ctx context.Context, paths ...string) (*Model, error) { return &Model{}, nil }

func (f *fakeLoader) Extensions() []string { return f.exts }

func TestForPath(t *testing.T) {
	t.Parallel()

	hcl := &fakeLoader{exts: []string{".hcl"}}
	yaml := &fakeLoader{exts: []string{".yaml", ".yml", ".json"}}
	loaders := []Loader{hcl, yaml}

	got, ok := ForPath(loaders, "grids/res.hcl")
	require.True(t, ok)
	assert.Same(t, hcl, got)

	got, ok = ForPath(loaders, "RES.YAML") // extension match is case-insensitive
	require.True(t, ok)
	assert.Same(t, yaml, got)

	_, ok = ForPath(loaders, "readme.md")
	assert.False(t, ok)

	assert.Equal(t, []string{".hcl", ".yaml", ".yml", ".json"}, AllExtensions(loaders))
}
