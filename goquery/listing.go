// Package goquery provides a goquery-based implementation of
// lexdoc.ListingExtractor for scraping document listing pages.
package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Achintya1800/lexdoc"
	"github.com/Achintya1800/lexdoc/normalize"
)

// rowSelectors are the structural patterns tried when looking for listing
// rows. Listing pages vary between plain lists, tables and CMS-flavored
// row containers, so the extractor matches all of them and lets the field
// heuristics decide what is usable.
var rowSelectors = strings.Join([]string{
	"li",
	".list-group-item",
	"tr",
	".views-row",
	".item", ".document", ".doc-item",
}, ", ")

// downloadSelectors identify an explicit download link inside a row, in
// priority order: a download-flavored href or attribute first, then a
// link to a known document format.
var downloadSelectors = []string{
	`a[href*="download"], a[download]`,
	`a[href$=".pdf"], a[href$=".doc"], a[href$=".docx"]`,
}

var (
	dateRE   = regexp.MustCompile(`\b(\d{1,2}[\-/ ]\w{3,9}[\-/ ]\d{2,4}|\d{1,2}[\-/ ]\d{1,2}[\-/ ]\d{2,4}|\w+\s+\d{1,2},\s*\d{4})\b`)
	serialRE = regexp.MustCompile(`^\s*(\d+)[).\-]\s*`)
)

// Compile-time interface verification.
var _ lexdoc.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor extracts structured items from listing page HTML.
// Extraction is deliberately schema-agnostic: rows are located by a small
// set of structural patterns and fields are pulled out of each row's text
// and links by heuristics, so minor markup drift does not break scraping.
type ListingExtractor struct {
	// Location is the timezone in which row dates are interpreted.
	Location *time.Location
}

// NewListingExtractor creates a ListingExtractor that interprets dates in loc.
func NewListingExtractor(loc *time.Location) *ListingExtractor {
	return &ListingExtractor{Location: loc}
}

// ExtractListing parses html and returns the listing items found, with
// URLs resolved against baseURL. Rows without a title link are skipped
// silently; malformed HTML never causes an error. Within one page, the
// first item wins for each (Title, DocURL) pair.
func (e *ListingExtractor) ExtractListing(html string, baseURL string) ([]lexdoc.RawItem, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, lexdoc.Errorf(lexdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	type key struct{ title, docURL string }
	seen := make(map[key]bool)
	var items []lexdoc.RawItem

	doc.Find(rowSelectors).Each(func(_ int, row *goquery.Selection) {
		if row.Find("a[href]").Length() == 0 {
			return
		}

		docURL, title := titleLink(row)
		if docURL == "" || title == "" {
			return
		}

		downloadURL := downloadLink(row)
		if downloadURL == "" {
			downloadURL = docURL
		}

		docURL = resolveURL(base, docURL)
		downloadURL = resolveURL(base, downloadURL)
		if docURL == "" {
			return
		}

		item := lexdoc.RawItem{
			SerialNo:    serial(row),
			Title:       title,
			DocURL:      docURL,
			DownloadURL: downloadURL,
		}

		text := visibleText(row)
		if size, ok := normalize.ParseSize(text); ok {
			item.FileSizeBytes = &size
		}
		if m := dateRE.FindString(text); m != "" {
			if d, ok := normalize.ParseDate(m, e.Location); ok {
				item.PublishedDate = &d
			}
		}
		if ft, ok := normalize.FileType(downloadURL); ok {
			item.FileType = ft
		}

		k := key{title: item.Title, docURL: item.DocURL}
		if seen[k] {
			return
		}
		seen[k] = true
		items = append(items, item)
	})

	return items, nil
}

// titleLink picks the row's primary link: among all anchors, the one with
// the longest visible text, ties broken by document order. Returns the
// href and trimmed text.
func titleLink(row *goquery.Selection) (href, title string) {
	best := -1
	row.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := strings.TrimSpace(a.Text())
		if len(text) > best {
			if h, ok := a.Attr("href"); ok {
				best = len(text)
				href = h
				title = text
			}
		}
	})
	return href, title
}

// downloadLink returns the href of the first link in the row signaling
// download intent, trying each selector group in priority order. Returns
// empty when the row has none.
func downloadLink(row *goquery.Selection) string {
	for _, sel := range downloadSelectors {
		if href, ok := row.Find(sel).First().Attr("href"); ok {
			return href
		}
	}
	return ""
}

// serial returns the leading "N." / "N)" / "N-" token of the row text,
// falling back to the first cell in tabular layouts.
func serial(row *goquery.Selection) string {
	if m := serialRE.FindStringSubmatch(visibleText(row)); m != nil {
		return m[1]
	}
	if cell := row.Find("td, th").First(); cell.Length() > 0 {
		if m := serialRE.FindStringSubmatch(visibleText(cell)); m != nil {
			return m[1]
		}
	}
	return ""
}

// visibleText is the row's text content with runs of whitespace collapsed
// to single spaces, so the field regexes see the text the way a browser
// renders it.
func visibleText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// resolveURL resolves href against base. Unparseable hrefs resolve to
// the empty string.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
