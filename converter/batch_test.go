package converter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/razorconv/razor"
)

func TestConvertAll(t *testing.T) {
	t.Parallel()

	conv := New(razor.NodeFactory{})
	exprs := []string{
		"DateTime.Now",
		`Html.Encode(Model.Name)`,
		"a ?? b",
		`ResolveUrl("~/x")`,
	}

	results, err := ConvertAll(context.Background(), conv, exprs, BatchOptions{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, []Result{
		{Source: "DateTime.Now", Expression: "DateTime.Now", Reason: "simple", Output: "@DateTime.Now"},
		{Source: `Html.Encode(Model.Name)`, Expression: "Model.Name", Reason: "simple", Output: "@Model.Name"},
		{Source: "a ?? b", Expression: "a ?? b", Multiline: true, Reason: "binary", Output: "@(a ?? b)"},
		{Source: `ResolveUrl("~/x")`, Expression: `Url.Content("~/x")`, Reason: "simple", Output: `@Url.Content("~/x")`},
	}, results)
}

func TestConvertAllKeepsOrder(t *testing.T) {
	t.Parallel()

	exprs := make([]string, 200)
	for i := range exprs {
		exprs[i] = fmt.Sprintf("Model.Items[%d]", i)
	}

	var progress bytes.Buffer
	results, err := ConvertAll(context.Background(), New(razor.NodeFactory{}), exprs, BatchOptions{
		Workers:  8,
		Progress: &progress,
	})
	require.NoError(t, err)
	require.Len(t, results, len(exprs))
	for i, r := range results {
		assert.Equal(t, exprs[i], r.Source)
	}
	assert.NotEmpty(t, progress.String())
}

func TestConvertAllCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ConvertAll(ctx, New(razor.NodeFactory{}), []string{"a", "b"}, BatchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestLoadBatchFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`
expressions:
  - DateTime.Now
  - "Html.Encode(x)"
  - |
    Html.Grid()
    .Name("g")
`), 0o644))

	exprs, err := LoadBatchFile(valid)
	require.NoError(t, err)
	assert.Equal(t, []string{"DateTime.Now", "Html.Encode(x)", "Html.Grid()\n.Name(\"g\")\n"}, exprs)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("expressions: [\n"), 0o644))
	_, err = LoadBatchFile(invalid)
	assert.Error(t, err)

	_, err = LoadBatchFile(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
