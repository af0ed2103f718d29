package report

import "context"

// ImageProvider resolves a URL or file path to encoded image bytes.
type ImageProvider interface {
	Image(ctx context.Context, ref string) ([]byte, error)
}

// FontAsset is a TrueType font ready to embed under Family.
type FontAsset struct {
	Family string
	Data   []byte
}

// FontProvider supplies the cover font. Implementations load it once per process.
type FontProvider interface {
	Font() (*FontAsset, error)
}

const (
	ElementBackground = "background"
	ElementFont       = "font"
	ElementPhoto      = "photo"
	ElementChrome     = "chrome"
)

// Degradation is a cover element that was left out instead of failing the page.
type Degradation struct {
	Element string
	Page    int
	Err     error
}
