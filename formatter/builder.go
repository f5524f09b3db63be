package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/fatih/color"

	"github.com/gnolang/razorconv/converter"
	"github.com/gnolang/razorconv/internal/multiline"
)

var (
	inlineStyle    = color.New(color.FgGreen, color.Bold)
	multilineStyle = color.New(color.FgHiYellow, color.Bold)
	reasonStyle    = color.New(color.FgYellow, color.Bold)
	lineStyle      = color.New(color.FgHiBlue, color.Bold)
	rewriteStyle   = color.New(color.FgCyan)
	outputStyle    = color.New(color.FgGreen, color.Bold)
	noteStyle      = color.New(color.FgGreen, color.Bold)
)

// resultFormatter supplies the text template used for one kind of result.
type resultFormatter interface {
	ResultTemplate() string
}

// getResultFormatter picks the formatter for r. Results without a more
// specific formatter use GeneralResultFormatter.
func getResultFormatter(r converter.Result) resultFormatter {
	switch {
	case r.Reason == string(multiline.ReasonUnparseable):
		return &UnparseableResultFormatter{}
	case r.Multiline:
		return &MultilineResultFormatter{}
	default:
		return &GeneralResultFormatter{}
	}
}

// GenerateFormattedResults renders results as human-readable text, one
// block per result, in the given order.
func GenerateFormattedResults(results []converter.Result) string {
	var builder strings.Builder
	for _, r := range results {
		builder.WriteString(buildResult(r, getResultFormatter(r)))
	}
	return builder.String()
}

/***** Result Formatter Builder *****/

type ResultData struct {
	Reason          string
	Lines           []string
	RewrittenLines  []string
	Changed         bool
	OutputLines     []string
	MaxLineNumWidth int
	Padding         string
}

func buildResult(r converter.Result, formatter resultFormatter) string {
	lines := displayLines(r.Source)
	maxLineNumWidth := calculateMaxLineNumWidth(len(lines))

	data := ResultData{
		Reason:          r.Reason,
		Lines:           lines,
		RewrittenLines:  displayLines(r.Expression),
		Changed:         strings.Trim(r.Source, " \t") != r.Expression,
		OutputLines:     displayLines(r.Output),
		MaxLineNumWidth: maxLineNumWidth,
		Padding:         strings.Repeat(" ", maxLineNumWidth+1),
	}

	funcMap := template.FuncMap{
		"header":    header,
		"snippet":   snippet,
		"rewritten": rewritten,
		"output":    output,
		"note":      note,
	}

	tmpl := template.Must(template.New("result").Funcs(funcMap).Parse(formatter.ResultTemplate()))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting result: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(kind string, reason string) string {
	style := inlineStyle
	if kind == "multiline" {
		style = multilineStyle
	}
	return style.Sprintf("%s: ", kind) + reasonStyle.Sprintf("%s\n", reason)
}

func snippet(lines []string, maxLineNumWidth int, padding string) string {
	endString := lineStyle.Sprintf("%s|\n", padding)
	for i, line := range lines {
		lineNum := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		endString += lineStyle.Sprintf("%s | ", lineNum) + line + "\n"
	}
	return endString
}

func rewritten(lines []string, changed bool, padding string) string {
	if !changed {
		return ""
	}
	var endString string
	for _, line := range lines {
		endString += lineStyle.Sprintf("%s+ ", padding) + rewriteStyle.Sprintf("%s\n", line)
	}
	return endString
}

func output(lines []string, padding string) string {
	var endString string
	for i, line := range lines {
		marker := "|"
		if i == 0 {
			marker = "="
		}
		endString += lineStyle.Sprintf("%s%s ", padding, marker) + outputStyle.Sprintf("%s\n", line)
	}
	return endString
}

func note(note string) string {
	if note == "" {
		return ""
	}
	return noteStyle.Sprint("note: ") + fmt.Sprintf("%s\n", note)
}

// displayLines splits text into lines for display, dropping carriage
// returns and a final empty line.
func displayLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func calculateMaxLineNumWidth(endLine int) int {
	return len(fmt.Sprintf("%d", endLine))
}
