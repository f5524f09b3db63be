package formatter

// MultilineResultFormatter marks results emitted as explicit @( ) expressions.
type MultilineResultFormatter struct{}

func (f *MultilineResultFormatter) ResultTemplate() string {
	return `{{header "multiline" .Reason -}}
{{snippet .Lines .MaxLineNumWidth .Padding -}}
{{rewritten .RewrittenLines .Changed .Padding -}}
{{output .OutputLines .Padding -}}
{{note "rendered as an explicit expression"}}
`
}
