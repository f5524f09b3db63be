package formatter

type UnparseableResultFormatter struct{}

func (f *UnparseableResultFormatter) ResultTemplate() string {
	return `{{header "inline" .Reason -}}
{{snippet .Lines .MaxLineNumWidth .Padding -}}
{{rewritten .RewrittenLines .Changed .Padding -}}
{{output .OutputLines .Padding -}}
{{note "not a single expression, emitted as written"}}
`
}
