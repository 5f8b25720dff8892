package scrape

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"cinecal/internal/release"
)

const (
	// MinSynopsisLength is the exclusive lower length bound for a synopsis
	// candidate. Anything shorter is a heading or a fragment.
	MinSynopsisLength = 50

	// MaxSynopsisLength is the exclusive upper bound for the container-level
	// fallback scan; whole-page containers concatenate far past this.
	MaxSynopsisLength = 500
)

// synopsisSkipTerms marks boilerplate paragraphs that are structurally
// indistinguishable from a synopsis (legal and accessibility text).
var synopsisSkipTerms = []string{"cookie", "privacy", "terms", "wheelchair", "audio description"}

// fallbackSkipTerms is the narrower denylist for the container-level scan:
// once the paragraph search has failed, container blocks are more likely to
// be genuine content.
var fallbackSkipTerms = []string{"cookie", "privacy", "terms"}

var runtimePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?)`)

// ExtractDetails mines runtime, cast and synopsis out of a film detail page.
// The three extractions are independent and best-effort; a missing field is
// an empty string, never an error.
func ExtractDetails(body string) release.Details {
	var details release.Details

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return details
	}

	texts := visibleStrings(doc)

	for _, text := range texts {
		if m := runtimePattern.FindStringSubmatch(text); m != nil {
			details.Runtime = m[1] + " min"
			break
		}
	}

	for _, text := range texts {
		if !strings.Contains(strings.ToLower(text), "starring") {
			continue
		}
		cast := text
		if i := strings.Index(cast, ":"); i >= 0 {
			cast = cast[i+1:]
		}
		cast = strings.TrimSpace(cast)
		if len(cast) > 3 {
			details.Cast = cast
			break
		}
	}

	details.Synopsis = extractSynopsis(doc)

	return details
}

// extractSynopsis scans paragraphs in document order for the first
// substantial block that is not boilerplate, falling back to bounded
// container text when no paragraph qualifies.
func extractSynopsis(doc *goquery.Document) string {
	var synopsis string

	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > MinSynopsisLength && !containsAny(text, synopsisSkipTerms) {
			synopsis = text
			return false
		}
		return true
	})
	if synopsis != "" {
		return synopsis
	}

	doc.Find("div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > MinSynopsisLength && len(text) < MaxSynopsisLength &&
			!containsAny(text, fallbackSkipTerms) {
			synopsis = text
			return false
		}
		return true
	})
	return synopsis
}

func containsAny(text string, terms []string) bool {
	lowered := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// visibleStrings collects trimmed, non-empty text nodes in document order,
// skipping script and style subtrees.
func visibleStrings(doc *goquery.Document) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				out = append(out, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return out
}
