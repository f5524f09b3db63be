package rewrite

import (
	"regexp"
	"strings"
)

// ResolveURL replaces every ResolveUrl with Url.Content.
type ResolveURL struct{}

func (ResolveURL) Name() string        { return "resolve-url" }
func (ResolveURL) Description() string { return "replace ResolveUrl with Url.Content" }

func (ResolveURL) Apply(subject string) string {
	return strings.ReplaceAll(subject, "ResolveUrl", "Url.Content")
}

var (
	encodeCallRegex = regexp.MustCompile(`(Html\.Encode|HttpUtility\.HtmlEncode)\s*\(`)
	stringCastRegex = regexp.MustCompile(`(?i)^\(\s*string\s*\)\s*`)
	decodeCallRegex = regexp.MustCompile(`(?s)HttpUtility\.HtmlDecode\((.*)\)`)
)

// EncodeRemoval unwraps Html.Encode(...) and HttpUtility.HtmlEncode(...)
// calls, since Razor encodes output on its own. A leading (string) cast on
// the argument is dropped too. Calls without a balancing ')' are kept.
type EncodeRemoval struct{}

func (EncodeRemoval) Name() string { return "remove-encode" }
func (EncodeRemoval) Description() string {
	return "unwrap Html.Encode and HttpUtility.HtmlEncode calls"
}

func (EncodeRemoval) Apply(subject string) string {
	var sb strings.Builder
	pos := 0
	for pos < len(subject) {
		loc := encodeCallRegex.FindStringIndex(subject[pos:])
		if loc == nil {
			break
		}
		start, open := pos+loc[0], pos+loc[1]
		end, ok := balancedClose(subject, open)
		if !ok {
			sb.WriteString(subject[pos : start+1])
			pos = start + 1
			continue
		}

		sb.WriteString(subject[pos:start])
		arg := strings.TrimSpace(subject[open:end])
		sb.WriteString(stringCastRegex.ReplaceAllString(arg, ""))
		// the argument is not rescanned
		pos = end + 1
	}
	sb.WriteString(subject[pos:])
	return sb.String()
}

// balancedClose returns the index of the ')' that closes a group whose
// contents start at from.
func balancedClose(s string, from int) (int, bool) {
	depth := 0
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

// DecodeWrap wraps HttpUtility.HtmlDecode(...) in Html.Raw so Razor does not
// encode the decoded value again. The argument runs to the last ')' in the
// text.
type DecodeWrap struct{}

func (DecodeWrap) Name() string        { return "wrap-decode" }
func (DecodeWrap) Description() string { return "wrap HttpUtility.HtmlDecode calls in Html.Raw" }

func (DecodeWrap) Apply(subject string) string {
	m := decodeCallRegex.FindStringSubmatchIndex(subject)
	if m == nil {
		return subject
	}
	arg := strings.TrimSpace(subject[m[2]:m[3]])
	return subject[:m[0]] + "Html.Raw(HttpUtility.HtmlDecode(" + arg + "))" + subject[m[1]:]
}
