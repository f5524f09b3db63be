package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/razorconv/converter"
	"github.com/gnolang/razorconv/formatter"
	"github.com/gnolang/razorconv/razor"
)

var (
	convertStdin    bool
	convertFile     string
	convertJSON     bool
	convertOutPath  string
	convertProgress bool
	convertWorkers  int
)

var errNoExpressions = errors.New("no expressions given")

var convertCmd = &cobra.Command{
	Use:   "convert [expressions...]",
	Short: "Convert expression blocks to Razor expressions",
	Long: `Converts the body of each <%= expr %> block to a Razor expression.
Example) razorconv convert 'Html.Encode(Model.Name)' --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := collectExpressions(cmd.InOrStdin(), args, convertStdin, convertFile)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext(cmd)
		defer cancel()

		opts := convertOptions{
			JSON:    convertJSON || config.Format == "json",
			OutPath: convertOutPath,
			Workers: config.Workers,
		}
		if cmd.Flags().Changed("workers") {
			opts.Workers = convertWorkers
		}
		if convertProgress {
			opts.Progress = cmd.ErrOrStderr()
		}
		return runConvert(ctx, logger, cmd.OutOrStdout(), exprs, opts)
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertStdin, "stdin", false, "Read a single expression from standard input")
	convertCmd.Flags().StringVar(&convertFile, "file", "", "YAML batch file with an expressions list")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Output results in JSON format")
	convertCmd.Flags().StringVarP(&convertOutPath, "output", "o", "", "Write output to this path")
	convertCmd.Flags().BoolVar(&convertProgress, "progress", false, "Show a progress bar on stderr")
	convertCmd.Flags().IntVar(&convertWorkers, "workers", 0, "Number of concurrent workers (0 = one per CPU)")
}

// commandContext applies the global timeout to the command's context. A
// command invoked directly through the root command has no context yet.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

type convertOptions struct {
	JSON     bool
	OutPath  string
	Workers  int
	Progress io.Writer
}

// collectExpressions gathers input from the batch file, stdin and args, in
// that order.
func collectExpressions(stdin io.Reader, args []string, fromStdin bool, batchPath string) ([]string, error) {
	var exprs []string
	if batchPath != "" {
		batch, err := converter.LoadBatchFile(batchPath)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, batch...)
	}
	if fromStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		exprs = append(exprs, string(data))
	}
	exprs = append(exprs, args...)
	if len(exprs) == 0 {
		return nil, errNoExpressions
	}
	return exprs, nil
}

func runConvert(ctx context.Context, logger *zap.Logger, w io.Writer, exprs []string, opts convertOptions) error {
	conv := converter.New(razor.NodeFactory{}, converter.WithLogger(logger))
	results, err := converter.ConvertAll(ctx, conv, exprs, converter.BatchOptions{
		Workers:  opts.Workers,
		Progress: opts.Progress,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("converting expressions: %w", err)
	}
	return writeResults(w, results, opts.JSON, opts.OutPath)
}

func writeResults(w io.Writer, results []converter.Result, asJSON bool, outPath string) error {
	var d []byte
	if asJSON {
		var err error
		d, err = formatter.FormatJSON(results)
		if err != nil {
			return fmt.Errorf("marshalling results to JSON: %w", err)
		}
	} else {
		d = []byte(formatter.GenerateFormattedResults(results))
	}

	if outPath == "" {
		_, err := w.Write(d)
		return err
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Fprintf(w, "Output written to %s\n", outPath)
	return nil
}
