package util

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDFSummary is what a rendered report reads back as.
type PDFSummary struct {
	Pages    int               `json:"pages"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Text     []string          `json:"text"`
}

// Contains reports whether any page holds s.
func (s *PDFSummary) Contains(sub string) bool {
	for _, t := range s.Text {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// InspectPDF opens the PDF at path and extracts the text of every page.
func InspectPDF(path string) (*PDFSummary, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	return summarize(doc)
}

// InspectPDFBytes is InspectPDF for an in-memory document.
func InspectPDFBytes(data []byte) (*PDFSummary, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()
	return summarize(doc)
}

func summarize(doc *fitz.Document) (*PDFSummary, error) {
	summary := &PDFSummary{
		Pages:    doc.NumPage(),
		Metadata: doc.Metadata(),
		Text:     make([]string, doc.NumPage()),
	}
	for n := 0; n < doc.NumPage(); n++ {
		text, err := doc.Text(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: failed to extract text: %w", n+1, err)
		}
		summary.Text[n] = strings.TrimSpace(text)
	}
	return summary, nil
}

// RenderPagePNG rasterizes page n (0-based) of the PDF at path into a PNG file.
func RenderPagePNG(path string, n int, out string) error {
	doc, err := fitz.New(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	if n < 0 || n >= doc.NumPage() {
		return fmt.Errorf("page %d out of range (document has %d pages)", n+1, doc.NumPage())
	}
	img, err := doc.Image(n)
	if err != nil {
		return fmt.Errorf("page %d: failed to render: %w", n+1, err)
	}
	return savePNG(out, img)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
