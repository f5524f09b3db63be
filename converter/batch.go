package converter

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is one converted expression as reported by the CLI.
type Result struct {
	Source     string `json:"source"`
	Expression string `json:"expression"`
	Multiline  bool   `json:"multiline"`
	Reason     string `json:"reason"`
	Output     string `json:"output"`
}

type BatchOptions struct {
	// Workers bounds concurrency; values below 1 mean one per CPU.
	Workers int
	// Progress receives a progress bar when non-nil.
	Progress io.Writer
	Logger   *zap.Logger
}

// ConvertAll converts every expression with conv. Results keep the order of
// exprs. Work stops early when ctx is cancelled, in which case the context
// error is returned.
func ConvertAll(ctx context.Context, conv *ExpressionBlockConverter, exprs []string, opts BatchOptions) ([]Result, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newProgressBar(opts.Progress, len(exprs))
	}

	results := make([]Result, len(exprs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, expr := range exprs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = conv.result(expr)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("batch conversion stopped", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		logger.Error("batch conversion stopped", zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (c *ExpressionBlockConverter) result(source string) Result {
	a := c.Analyze(source)
	node := c.factory.CreateExpressionNode(a.Expression, a.Multiline)
	return Result{
		Source:     source,
		Expression: a.Expression,
		Multiline:  a.Multiline,
		Reason:     string(a.Reason),
		Output:     node.Render(),
	}
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
