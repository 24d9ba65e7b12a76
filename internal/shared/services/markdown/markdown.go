package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Service renders author-written markdown into HTML safe to hand to the
// client. Explanations come from the admin console, so the sanitizer is the
// last line of defense against markup smuggled into a problem.
type Service interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
			// Raw HTML is rendered and then sanitized, so furigana markup
			// like <ruby> survives while anything dangerous is stripped.
			html.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("lang").OnElements("span", "ruby")
	policy.AllowElements("ruby", "rt", "rp")

	return &serviceImpl{
		md:     md,
		policy: policy,
	}
}

func (s *serviceImpl) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}
