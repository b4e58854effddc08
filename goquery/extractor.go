// Package goquery provides a goquery-based implementation of
// headlines.HeadlineExtractor.
package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/headlines"
	"github.com/fwojciec/headlines/bloom"
)

// Ensure Extractor implements headlines.HeadlineExtractor at compile time.
var _ headlines.HeadlineExtractor = (*Extractor)(nil)

// Extractor extracts headline links from every anchor on a page that has
// an href attribute.
//
// For each anchor the title is taken from the first descendant matching the
// headline tag, unless its text is one of headlines.FalseWords. Otherwise a
// title attribute longer than headlines.MinTitleAttrLen is used. Anchors with
// neither are skipped.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractHeadlines implements headlines.HeadlineExtractor.
func (e *Extractor) ExtractHeadlines(baseURL, provider string, page *headlines.Page, tag string) ([]headlines.Headline, error) {
	if page == nil {
		return nil, nil
	}

	sel, err := cascadia.Compile(tag)
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "invalid headline tag %q: %v", tag, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Content))
	if err != nil {
		return nil, headlines.Errorf(headlines.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := bloom.NewLinkSet(bloom.DefaultExpectedLinks, bloom.DefaultFalsePositive)
	results := []headlines.Headline{}

	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		link := headlines.NormalizeLink(baseURL, href)

		title, ok := headlineTitle(a, sel)
		if !ok {
			return
		}

		// First occurrence wins
		if !seen.Add(link) {
			return
		}

		results = append(results, headlines.Headline{
			Provider: provider,
			Title:    title,
			Link:     link,
		})
	})

	return results, nil
}

// headlineTitle picks the title for an anchor.
func headlineTitle(a *goquery.Selection, sel cascadia.Selector) (string, bool) {
	if tagged := a.FindMatcher(sel).First(); tagged.Length() > 0 {
		if text := tagged.Text(); !headlines.IsFalseWord(text) {
			return text, true
		}
	}

	if title, ok := a.Attr("title"); ok && headlines.UsableTitleAttr(title) {
		return title, true
	}

	return "", false
}
