package translator

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"gtranslate/plugin/internal/config"
)

// resultClass marks the element holding the rendered translation.
const resultClass = "result-container"

// ErrNoMatch is returned by an Extractor when the page has no result container.
var ErrNoMatch = errors.New("result container not found")

// Extractor pulls the raw (still HTML-escaped) translation out of a response body.
// Implementations return ErrNoMatch when the page carries no translation.
type Extractor interface {
	Extract(body string) (string, error)
}

// RegexExtractor matches the text right after class="result-container"> up to the next tag.
type RegexExtractor struct {
	re *regexp.Regexp
}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{re: regexp.MustCompile(`class="` + resultClass + `">(.*?)<`)}
}

func (x *RegexExtractor) Extract(body string) (string, error) {
	m := x.re.FindStringSubmatch(body)
	if m == nil {
		return "", ErrNoMatch
	}
	return m[1], nil
}

// HTMLExtractor walks the token stream and returns the text of the first element
// whose class list contains result-container, up to the next tag. The text is
// re-escaped so both extractors hand the same form to the fetcher.
type HTMLExtractor struct{}

func (HTMLExtractor) Extract(body string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(body))
	inside := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if inside && errors.Is(z.Err(), io.EOF) {
				return "", nil
			}
			return "", ErrNoMatch
		case html.StartTagToken:
			if inside {
				return "", nil
			}
			inside = hasClass(z.Token(), resultClass)
		case html.TextToken:
			if inside {
				return html.EscapeString(string(z.Text())), nil
			}
		default:
			if inside {
				return "", nil
			}
		}
	}
}

func hasClass(t html.Token, class string) bool {
	for _, a := range t.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// NewExtractor returns the extractor named by the config's Extractor setting.
func NewExtractor(name string) Extractor {
	if name == config.ExtractorHTML {
		return HTMLExtractor{}
	}
	return NewRegexExtractor()
}
