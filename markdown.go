package herald

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	defaultPolicy     *bluemonday.Policy
	defaultPolicyOnce sync.Once
)

// defaultHTMLPolicy returns the sanitizer applied to markdown-produced HTML.
// Based on the UGC policy, plus the class attribute on links so the rendered
// action button keeps its styling hook.
func defaultHTMLPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		defaultPolicy = p
	})
	return defaultPolicy
}

// markdownRenderer converts alert message markdown to sanitized HTML.
type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer(policy *bluemonday.Policy) *markdownRenderer {
	if policy == nil {
		policy = defaultHTMLPolicy()
	}
	return &markdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
		),
		policy: policy,
	}
}

// render converts markdown to HTML and sanitizes the result, making it safe
// to insert unescaped into the alert template.
func (r *markdownRenderer) render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}
	return template.HTML(r.policy.Sanitize(buf.String())), nil
}
