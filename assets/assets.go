package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// spriteSize is the edge of the square each planet sprite is drawn into.
// Sprites are scaled down to their on-screen diameter when drawn.
const spriteSize = 64

// StarColor is the colour of the disc drawn at the origin.
var StarColor = color.RGBA{255, 0, 0, 255}

// Palette holds one colour per asset index, innermost planet first.
var Palette = []color.RGBA{
	colornames.Darkgray,      // mercury
	colornames.Burlywood,     // venus
	colornames.Dodgerblue,    // earth
	colornames.Orangered,     // mars
	colornames.Sandybrown,    // jupiter
	colornames.Khaki,         // saturn
	colornames.Paleturquoise, // uranus
	colornames.Royalblue,     // neptune
	colornames.Rosybrown,     // pluto
}

var (
	HUDFont *text.GoTextFace

	sprites []*ebiten.Image
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	HUDFont = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}

	sprites = make([]*ebiten.Image, len(Palette))
	for i, c := range Palette {
		sprites[i] = newDisc(c)
	}
}

// Sprite returns the image for an asset index. Indices past the palette wrap
// around.
func Sprite(assetIndex int) *ebiten.Image {
	if assetIndex < 0 {
		assetIndex = -assetIndex
	}
	return sprites[assetIndex%len(sprites)]
}

// SpriteSize is the width and height of every sprite in pixels.
func SpriteSize() float64 {
	return spriteSize
}

func newDisc(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(spriteSize, spriteSize)
	half := float32(spriteSize) / 2
	vector.DrawFilledCircle(img, half, half, half, c, true)
	return img
}
