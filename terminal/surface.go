package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stagekit/asset"
)

// Surface renders the frame's draw batch onto terminal cells. Textures
// map one pixel to one colored block cell; text is written as runes, so
// the font face carries no metrics here.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

func (s *Surface) Clear() {
	s.screen.Clear()
}

func (s *Surface) Texture(t *asset.Texture, x, y float64) {
	if t == nil || t.Image == nil {
		return
	}
	bounds := t.Image.Bounds()
	ox, oy := int(x), int(y)

	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			r, g, b, a := t.Image.At(px, py).RGBA()
			if a == 0 {
				continue
			}
			color := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
			s.screen.SetContent(ox+px-bounds.Min.X, oy+py-bounds.Min.Y,
				'█', nil, tcell.StyleDefault.Foreground(color))
		}
	}
}

func (s *Surface) Text(_ *asset.Font, text string, x, y float64) {
	cx, cy := int(x), int(y)
	for _, r := range text {
		s.screen.SetContent(cx, cy, r, nil, tcell.StyleDefault)
		cx++
	}
}

func (s *Surface) Present() {
	s.screen.Show()
}
