// Package notation parses the inline language-pair shorthand typed in front of
// the text to translate:
//
//	hello world          default source and target
//	en:fr hello world    explicit source and target
//	:fr hello world      default source, explicit target
//	en: hello world      explicit source, default target
package notation

import "strings"

// Defaults are the languages used when the notation omits one side.
type Defaults struct {
	From string
	To   string
}

// Request is a parsed query.
type Request struct {
	From string
	To   string
	Text string
}

// Empty reports whether there is nothing to translate.
func (r Request) Empty() bool { return r.Text == "" }

// Parse splits raw into languages and text. Only the first space-delimited
// token is inspected for a colon, and only when text follows it.
func Parse(raw string, d Defaults) Request {
	req := Request{From: d.From, To: d.To, Text: strings.TrimSpace(raw)}

	prefix, rest, found := strings.Cut(req.Text, " ")
	if !found || !strings.Contains(prefix, ":") {
		return req
	}

	req.Text = strings.TrimSpace(rest)
	if to, ok := strings.CutPrefix(prefix, ":"); ok {
		req.To = orDefault(to, d.To)
		return req
	}

	from, to, _ := strings.Cut(prefix, ":")
	req.From = orDefault(from, d.From)
	req.To = orDefault(to, d.To)
	return req
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}
