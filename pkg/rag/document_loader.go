package rag

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// DocumentLoader pulls raw text out of the ingestion sources: policy PDFs
// and authority web pages.
type DocumentLoader struct {
	httpClient *http.Client
}

// NewDocumentLoader creates a loader with a bounded HTTP timeout for page
// fetches.
func NewDocumentLoader(timeout time.Duration) *DocumentLoader {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &DocumentLoader{httpClient: &http.Client{Timeout: timeout}}
}

// LoadPDF extracts the plain text of a PDF file, page by page.
func (l *DocumentLoader) LoadPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer file.Close()

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	content := CleanText(b.String())
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("pdf %s contains no extractable text", path)
	}
	return content, nil
}

// LoadWebPage fetches a URL and returns the text of its content-bearing
// elements (headings, paragraphs, list items).
func (l *DocumentLoader) LoadWebPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("fetching %s returned %d", url, resp.StatusCode)
	}

	text, err := ExtractPageText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return text, nil
}

// contentTags are the elements whose text carries page content worth
// indexing.
var contentTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "li": true,
}

// ExtractPageText walks an HTML document and joins the text of content
// elements with single spaces.
func ExtractPageText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var parts []string
	var walk func(n *html.Node, capture bool)
	walk = func(n *html.Node, capture bool) {
		if n.Type == html.ElementNode {
			if n.Data == "script" || n.Data == "style" {
				return
			}
			if contentTags[n.Data] {
				capture = true
			}
		}
		if n.Type == html.TextNode && capture {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, capture)
		}
	}
	walk(doc, false)

	return CleanText(strings.Join(parts, " ")), nil
}
