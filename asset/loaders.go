// Package asset provides the loader capability for each resource kind
// and the composite storage that aggregates the typed ticket stores
// behind one directory.
package asset

import (
	"image"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Texture is a decoded image resource.
type Texture struct {
	Image image.Image
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (w, h int) {
	b := t.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Font is a rasterizable face at one point size.
type Font struct {
	Face font.Face
	Size float64
}

// FontArgs are the loader arguments for fonts: a file path plus the
// point size to build the face at.
type FontArgs struct {
	Path string
	Size float64
}

// TextureLoader decodes an image file (PNG, JPEG, BMP).
type TextureLoader struct{}

func (TextureLoader) Load(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return &Texture{Image: img}, nil
}

// FontLoader parses an OpenType font and builds a face at the
// requested point size.
type FontLoader struct{}

func (FontLoader) Load(args FontArgs) (*Font, error) {
	data, err := os.ReadFile(args.Path)
	if err != nil {
		return nil, err
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    args.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Font{Face: face, Size: args.Size}, nil
}
