package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	Title FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	// item faces are built lazily per text size from itemFont
	itemFont *truetype.Font
	sized    = map[int]font.Face{}
)

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// LoadItemFont sets the font used for menu items of any text size.
func LoadItemFont(ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse item font: %w", err)
	}
	itemFont = fontData
	sized = map[int]font.Face{}
	return nil
}

// Sized returns the item face for a text size, creating it on first use.
func Sized(size int) font.Face {
	if f, ok := sized[size]; ok {
		return f
	}
	if itemFont == nil {
		panic("Item font not loaded")
	}
	f := truetype.NewFace(itemFont, &truetype.Options{Size: float64(size)})
	sized[size] = f
	return f
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
