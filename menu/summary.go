package menu

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultTitleSuffix is the site name appended to every page title.
	DefaultTitleSuffix = "- INABOOTH"

	// MaxItems is the number of distinct content and action items kept per page.
	MaxItems = 10

	// MaxSelectedText is the length (in characters) that text matched by a class selector is truncated to.
	MaxSelectedText = 50
)

// DefaultSelectors are the page specific content areas included in the content summary.
var DefaultSelectors = []string{
	".auth-subtitle",
	".chat-item__content",
	".chat-main__text",
}

// PageSummary is the heuristic description of a single page.
type PageSummary struct {
	Title        string
	ContentItems []string
	ActionItems  []string
}

// Content returns the content items formatted for a single sheet cell.
func (p PageSummary) Content() string {
	return strings.Join(p.ContentItems, ", ")
}

// Actions returns the link/button items formatted for a single sheet cell.
func (p PageSummary) Actions() string {
	return strings.Join(p.ActionItems, " / ")
}

// Summarizer extracts the title, headings/labels and links/buttons from an HTML page.
// The zero value summarizes without stripping a title suffix and without any class
// selectors.
type Summarizer struct {
	TitleSuffix string
	Selectors   []string
}

// NewSummarizer returns a Summarizer with the INABOOTH title suffix and content selectors.
func NewSummarizer() Summarizer {
	return Summarizer{
		TitleSuffix: DefaultTitleSuffix,
		Selectors:   append([]string{}, DefaultSelectors...),
	}
}

// Summarize parses the HTML and extracts the page summary. The fallback title is used
// when the page has no <title> element. Malformed HTML is parsed on a best effort basis,
// the only failure is content that is not valid UTF-8.
func (s Summarizer) Summarize(html []byte, fallback string) (PageSummary, error) {
	if !utf8.Valid(html) {
		return PageSummary{}, ErrEncoding
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return PageSummary{}, fmt.Errorf("Unable to parse HTML (%w)", err)
	}

	return PageSummary{
		Title:        s.title(doc, fallback),
		ContentItems: distinct(s.content(doc), MaxItems),
		ActionItems:  distinct(actions(doc), MaxItems),
	}, nil
}

func (s Summarizer) title(doc *goquery.Document, fallback string) string {
	title := doc.Find("title").First()
	if title.Length() == 0 {
		return fallback
	}

	text := clean(title.Text())
	if s.TitleSuffix != "" {
		text = strings.TrimSuffix(text, s.TitleSuffix)
	}

	return strings.TrimSpace(text)
}

func (s Summarizer) content(doc *goquery.Document) []string {
	items := []string{}

	doc.Find("h1, h2, h3").Each(func(_ int, h *goquery.Selection) {
		if text := clean(h.Text()); text != "" {
			items = append(items, text)
		}
	})

	doc.Find("label").Each(func(_ int, label *goquery.Selection) {
		if text := clean(label.Text()); text != "" {
			items = append(items, text)
		}
	})

	for _, selector := range s.Selectors {
		doc.Find(selector).Each(func(_ int, e *goquery.Selection) {
			if text := clean(e.Text()); text != "" {
				items = append(items, truncate(text, MaxSelectedText))
			}
		})
	}

	return items
}

func actions(doc *goquery.Document) []string {
	items := []string{}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		text := clean(a.Text())

		if text != "" && href != "" && href != "#" {
			items = append(items, fmt.Sprintf("[%s] -> %s", text, href))
		}
	})

	doc.Find("button").Each(func(_ int, button *goquery.Selection) {
		if text := clean(button.Text()); text != "" {
			items = append(items, fmt.Sprintf("[BUTTON: %s]", text))
		}
	})

	return items
}

// distinct removes duplicates (first occurrence wins) and then keeps at most 'limit' items.
func distinct(items []string, limit int) []string {
	list := []string{}
	seen := map[string]bool{}

	for _, item := range items {
		if len(list) >= limit {
			break
		}

		if !seen[item] {
			seen[item] = true
			list = append(list, item)
		}
	}

	return list
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// clean trims leading and trailing whitespace. Internal whitespace is kept as is, so only
// identical trimmed text is treated as a duplicate.
func clean(s string) string {
	return strings.TrimSpace(s)
}
