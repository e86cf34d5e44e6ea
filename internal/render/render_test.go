package render

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/irlit/internal/literal"
	"github.com/roach88/irlit/internal/request"
)

func loadPooling(t *testing.T, format string) *request.Batch {
	t.Helper()
	batch, err := request.Load(filepath.Join("..", "request", "testdata", "pooling."+format))
	require.NoError(t, err)
	return batch
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderGolden(t *testing.T) {
	for _, format := range []string{"yaml", "cue"} {
		t.Run(format, func(t *testing.T) {
			batch := loadPooling(t, format)

			result, errs := Render(batch, Options{IDs: NewFixedGenerator("run-1")})
			require.Empty(t, errs)

			data, err := result.Canonical()
			require.NoError(t, err)

			g := newGolden(t)
			g.Assert(t, batch.Name+".json", data)
			g.Assert(t, batch.Name+".cpp", []byte(result.CppInitializers()))
		})
	}
}

func TestRenderPreservesOrder(t *testing.T) {
	batch := loadPooling(t, "yaml")

	result, errs := Render(batch, Options{IDs: NewFixedGenerator("run-1")})
	require.Empty(t, errs)
	require.Len(t, result.Entries, len(batch.Literals))

	for i, lit := range batch.Literals {
		assert.Equal(t, lit.Name, result.Entries[i].Name)
		assert.Equal(t, lit.Kind, result.Entries[i].Kind)
	}
	assert.Equal(t, "run-1", result.RunID)
	assert.Equal(t, batch.Source, result.Source)
}

func badBatch() *request.Batch {
	return &request.Batch{
		Name: "bad",
		Literals: []request.Literal{
			{Name: "flag", Kind: "bool", Args: []string{"maybe"}},
			{Name: "pad", Kind: "autopad", Args: []string{"valid"}},
			{Name: "precisions", Kind: "precisions", Args: []string{"FP32", "I8"}},
			{Name: "kernel", Kind: "ints", Args: []string{"3"}},
		},
	}
}

func TestRenderCollectAll(t *testing.T) {
	result, errs := Render(badBatch(), Options{IDs: NewFixedGenerator("run-1")})
	require.Len(t, errs, 2)

	var first *EntryError
	require.ErrorAs(t, errs[0], &first)
	assert.Equal(t, "flag", first.Name)
	assert.Equal(t, 0, first.Index)
	assert.True(t, literal.IsUnknownToken(errs[0]))

	var second *EntryError
	require.ErrorAs(t, errs[1], &second)
	assert.Equal(t, 2, second.Index)
	assert.Contains(t, errs[1].Error(), "literals[2] precisions")
	assert.Contains(t, errs[1].Error(), "index=1")

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "pad", result.Entries[0].Name)
	assert.Equal(t, "kernel", result.Entries[1].Name)
}

func TestRenderFailFast(t *testing.T) {
	result, errs := Render(badBatch(), Options{Mode: ModeFailFast, IDs: NewFixedGenerator("run-1")})
	require.Len(t, errs, 1)
	assert.True(t, literal.IsUnknownToken(errs[0]))
	assert.Empty(t, result.Entries)
}

func TestRenderDefaultRunID(t *testing.T) {
	batch := &request.Batch{
		Name:     "one",
		Literals: []request.Literal{{Name: "r", Kind: "rounding", Args: []string{"floor"}}},
	}

	result, errs := Render(batch, Options{})
	require.Empty(t, errs)
	assert.Len(t, result.RunID, 36)
	assert.Equal(t, "r = ngraph::op::RoundingType::FLOOR;\n", result.CppInitializers())
}
