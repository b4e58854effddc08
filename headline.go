package headlines

import (
	"strings"
	"unicode/utf8"
)

// MinTitleAttrLen is the length a title attribute must exceed before it is
// used as a headline. Length is counted in characters.
const MinTitleAttrLen = 30

// AbsoluteLinkPrefix marks an href that is kept as-is during normalization.
const AbsoluteLinkPrefix = "https://"

// FalseWords are text values that never count as a headline.
var FalseWords = []string{"", " ", "\n", "\n\n"}

// Headline is a single headline link scraped from a provider's front page.
type Headline struct {
	Provider string
	Title    string
	Link     string
}

// headlineFields is the column order of a Headline row.
var headlineFields = []string{"provider", "title", "link"}

// Fields returns the column names of a headline row in write order.
func (h Headline) Fields() []string {
	fields := make([]string, len(headlineFields))
	copy(fields, headlineFields)
	return fields
}

// Row returns the headline values in the order given by Fields.
func (h Headline) Row() []string {
	return []string{h.Provider, h.Title, h.Link}
}

// HeadlineExtractor extracts headlines from a site's front page.
type HeadlineExtractor interface {
	// ExtractHeadlines returns the headlines found in page, deduplicated by
	// link and in document order. baseURL is used to rewrite relative links
	// and tag names the element holding headline text inside an anchor.
	//
	// A nil page returns a nil slice; a page without qualifying anchors
	// returns an empty, non-nil slice.
	ExtractHeadlines(baseURL, provider string, page *Page, tag string) ([]Headline, error)
}

// IsFalseWord reports whether text is one of FalseWords.
func IsFalseWord(text string) bool {
	for _, w := range FalseWords {
		if text == w {
			return true
		}
	}
	return false
}

// UsableTitleAttr reports whether a title attribute is long enough to
// stand in for missing headline text.
func UsableTitleAttr(title string) bool {
	return utf8.RuneCountInString(title) > MinTitleAttrLen
}

// NormalizeLink rewrites href into an absolute link against baseURL.
//
// Links starting with AbsoluteLinkPrefix are returned unchanged. Any other
// href is treated as root-relative: its first byte is dropped and the rest
// appended to baseURL, so "/foo" on "https://x.com/" gives
// "https://x.com/foo". An href without a leading slash loses its first
// character, and http:// links are joined the same way.
func NormalizeLink(baseURL, href string) string {
	if strings.HasPrefix(href, AbsoluteLinkPrefix) {
		return href
	}
	if href == "" {
		return baseURL
	}
	return baseURL + href[1:]
}

// OutputFilename returns the name of the file a provider's headlines are
// written to.
func OutputFilename(provider string) string {
	return provider + "_news.csv"
}

// FormatHeadlines formats headlines one per line for display.
func FormatHeadlines(hs []Headline) string {
	if len(hs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(hs))
	for _, h := range hs {
		lines = append(lines, h.Title+"\n  "+h.Link)
	}
	return strings.Join(lines, "\n")
}
