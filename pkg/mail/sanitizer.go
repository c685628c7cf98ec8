package mail

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer reduces newsletter HTML to readable article content. Newsletters
// arrive wrapped in layout tables, hidden preview text and tracking pixels;
// the structural pass strips that scaffolding and the policy pass strips
// everything but content markup.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the newsletter content policy
func NewSanitizer() *Sanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6",
		"p", "br", "ul", "ol", "li", "blockquote", "pre", "code",
		"strong", "em", "b", "i", "u", "div", "span")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.AllowImages()
	return &Sanitizer{policy: policy}
}

// Clean strips newsletter scaffolding and returns content-only HTML.
// Empty input yields an empty string. A structural parse failure degrades to
// a regex tag stripper, never to dropping the message.
func (s *Sanitizer) Clean(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	cleaned, err := s.structuralClean(html)
	if err != nil {
		lgr.Printf("[WARN] structural html cleanup failed, falling back to tag stripping: %v", err)
		return stripTags(html)
	}

	return collapseWhitespace(s.policy.Sanitize(cleaned))
}

// structuralClean removes elements the policy pass cannot judge: hidden
// containers, tracking pixels and layout tables need context, not just tag
// names.
func (s *Sanitizer) structuralClean(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("meta, style, script, link, title").Remove()

	// hidden preview text and anything else visually suppressed
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		if isHiddenStyle(style) {
			sel.Remove()
		}
	})

	// tracking pixels: 1x1 or invisible images
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		width, _ := sel.Attr("width")
		height, _ := sel.Attr("height")
		if width == "1" || height == "1" || width == "0" || height == "0" {
			sel.Remove()
		}
	})

	// layout tables carry no semantics, lift their content out one table at
	// a time; re-parsing the lifted fragment outside table context drops the
	// tbody/tr/td scaffolding and keeps the children
	for {
		table := doc.Find("table").First()
		if table.Length() == 0 {
			break
		}
		inner, _ := table.Html()
		table.ReplaceWithHtml(inner)
	}

	return doc.Find("body").Html()
}

func isHiddenStyle(style string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(normalized, "display:none") ||
		strings.Contains(normalized, "visibility:hidden") ||
		strings.Contains(normalized, "max-height:0")
}

var (
	tagRe        = regexp.MustCompile(`(?s)<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`[ \t]*\n[ \t\n]*`)
)

// stripTags is the degraded path: all markup goes, text survives
func stripTags(html string) string {
	return collapseWhitespace(tagRe.ReplaceAllString(html, " "))
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, "\n"))
}
