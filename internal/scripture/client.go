// Package scripture fetches canonical Korean verse text from the holybible
// online reader. Absence of canonical text is not an error: callers fall back
// to the generated passage.
package scripture

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/epistleapp/epistle/internal/entities"
)

// DefaultBaseURL is the canonical text source. The page is served as EUC-KR.
const DefaultBaseURL = "http://holybible.or.kr/B_GAE/cgi/bibleftxt.php"

// Client fetches one chapter of canonical verse text at a time.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a scripture client against baseURL (use DefaultBaseURL
// in production).
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
	}
}

// FetchChapter returns the verses of one chapter, possibly empty. The book is
// addressed by its 3-letter code. An unknown code, a transport failure or an
// unparseable page all yield an empty slice and an error the caller may log
// and ignore.
func (c *Client) FetchChapter(ctx context.Context, bookCode string, chapter int) ([]entities.Verse, error) {
	index, ok := bookIndex[strings.ToLower(bookCode)]
	if !ok {
		return nil, fmt.Errorf("unknown book code %q", bookCode)
	}

	query := url.Values{}
	query.Set("VR", "GAE")
	query.Set("VL", strconv.Itoa(index))
	query.Set("CN", strconv.Itoa(chapter))
	query.Set("CV", "99")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Epistle/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	// The source serves EUC-KR without a usable charset header.
	decoded := transform.NewReader(resp.Body, korean.EUCKR.NewDecoder())
	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return parseVerses(doc), nil
}

var verseMarker = regexp.MustCompile(`^\s*(\d+):(\d+)\s*$`)

// parseVerses walks the verse markers ("chapter:verse" in bold) and collects
// the text node that follows each marker's enclosing font element.
func parseVerses(doc *goquery.Document) []entities.Verse {
	var verses []entities.Verse

	doc.Find("font b").Each(func(_ int, sel *goquery.Selection) {
		match := verseMarker.FindStringSubmatch(sel.Text())
		if match == nil {
			return
		}
		number, err := strconv.Atoi(match[2])
		if err != nil {
			return
		}

		node := sel.Get(0)
		if node.Parent == nil {
			return
		}
		text := followingText(node.Parent)
		if text == "" {
			return
		}
		verses = append(verses, entities.Verse{Number: number, Text: text})
	})

	return verses
}

// followingText returns the trimmed text content of the sibling nodes between
// a verse marker and the next element.
func followingText(node *html.Node) string {
	var parts []string
	for sibling := node.NextSibling; sibling != nil; sibling = sibling.NextSibling {
		if sibling.Type == html.ElementNode {
			break
		}
		if sibling.Type == html.TextNode {
			if text := strings.TrimSpace(sibling.Data); text != "" {
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

// FormatPassage renders verses the way cached passages store them, one
// numbered verse per line.
func FormatPassage(verses []entities.Verse) string {
	lines := make([]string, 0, len(verses))
	for _, v := range verses {
		lines = append(lines, fmt.Sprintf("%d. %s", v.Number, v.Text))
	}
	return strings.Join(lines, "\n")
}
