package formatter

type GeneralResultFormatter struct{}

func (f *GeneralResultFormatter) ResultTemplate() string {
	return `{{header "inline" .Reason -}}
{{snippet .Lines .MaxLineNumWidth .Padding -}}
{{rewritten .RewrittenLines .Changed .Padding -}}
{{output .OutputLines .Padding}}
`
}
