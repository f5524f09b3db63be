package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/razorconv/converter"
	"github.com/gnolang/razorconv/rewrite"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestCollectExpressions(t *testing.T) {
	t.Parallel()

	batch := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(batch, []byte("expressions:\n  - a\n  - b\n"), 0o644))

	tests := []struct {
		name      string
		stdin     string
		args      []string
		fromStdin bool
		batchPath string
		expected  []string
		wantErr   error
	}{
		{name: "args", args: []string{"x", "y"}, expected: []string{"x", "y"}},
		{name: "stdin is one expression", stdin: "a\r\n.B", fromStdin: true, expected: []string{"a\r\n.B"}},
		{name: "batch first", batchPath: batch, args: []string{"c"}, expected: []string{"a", "b", "c"}},
		{name: "nothing", wantErr: errNoExpressions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := collectExpressions(strings.NewReader(tt.stdin), tt.args, tt.fromStdin, tt.batchPath)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRunConvertText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := runConvert(context.Background(), zap.NewNop(), &buf, []string{"DateTime.Now"}, convertOptions{Workers: 1})
	require.NoError(t, err)

	expected := `inline: simple
  |
1 | DateTime.Now
  = @DateTime.Now

`
	assert.Equal(t, expected, buf.String())
}

func TestRunConvertJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	exprs := []string{`Html.Encode(x)`, "a || b"}
	err := runConvert(context.Background(), zap.NewNop(), &buf, exprs, convertOptions{JSON: true})
	require.NoError(t, err)

	var results []converter.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "@x", results[0].Output)
	assert.True(t, results[1].Multiline)
	assert.Equal(t, "@(a || b)", results[1].Output)
}

func TestRunConvertOutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.json")
	var buf bytes.Buffer
	err := runConvert(context.Background(), zap.NewNop(), &buf, []string{"x"}, convertOptions{JSON: true, OutPath: out})
	require.NoError(t, err)
	assert.Equal(t, "Output written to "+out+"\n", buf.String())

	d, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(d), `"output": "@x"`)
}

func TestRunConvertCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := runConvert(ctx, zap.NewNop(), &buf, []string{"x"}, convertOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestRunClassify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runClassify(zap.NewNop(), &buf, []string{"some .Property", "(a || b)"}, false))
	assert.Equal(t,
		`"some .Property": multiline=true reason=trailing-trivia`+"\n"+
			`"(a || b)": multiline=false reason=simple`+"\n",
		buf.String())
}

func TestRunClassifyDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runClassify(zap.NewNop(), &buf, []string{"a+b"}, true))
	expected := `"a+b": multiline=true reason=binary
Binary "a+b"
  Identifier "a"
  Identifier "b"
`
	assert.Equal(t, expected, buf.String())
}

func TestRunRewrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, runRewrite(zap.NewNop(), &buf, []string{
		` Html.Encode(ResolveUrl("~/a")) `,
		`HttpUtility.HtmlDecode(x)`,
	}))
	assert.Equal(t, "Url.Content(\"~/a\")\nHtml.Raw(HttpUtility.HtmlDecode(x))\n", buf.String())
}

func TestPrintRules(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, rewrite.DefaultRules()))
	expected := `1. resolve-url    replace ResolveUrl with Url.Content
2. remove-encode  unwrap Html.Encode and HttpUtility.HtmlEncode calls
3. wrap-decode    wrap HttpUtility.HtmlDecode calls in Html.Raw
`
	assert.Equal(t, expected, buf.String())
}

func TestInitConfigurationFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".razorconv.yaml")
	got, err := initConfigurationFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	config, err := converter.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, converter.DefaultConfig(), config)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := newLogger("razorconv", level)
		require.NoError(t, err, level)
		assert.Equal(t, "razorconv", l.Name())
	}

	l, err := newLogger("", "info")
	require.NoError(t, err)
	assert.Empty(t, l.Name())

	_, err = newLogger("site", "loud")
	assert.Error(t, err)
}

// TestExecuteRewrite runs the full command tree and touches package state,
// so it does not run in parallel.
func TestExecuteRewrite(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"rewrite", `Html.Encode(ResolveUrl("x"))`,
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	assert.Equal(t, "Url.Content(\"x\")\n", buf.String())
	assert.Equal(t, converter.DefaultConfig(), config)
	assert.Equal(t, "razorconv", logger.Name())
}
