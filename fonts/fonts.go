package fonts

import (
	"log"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Title FontName = "title"
	Body  FontName = "body"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

func init() {
	// Everything renders with the bitmap face until a TTF is loaded.
	fonts[Title] = basicfont.Face7x13
	fonts[Body] = basicfont.Face7x13
	fonts[Small] = basicfont.Face7x13
}

// LoadFontFile replaces the fallback face for name with a truetype face
// from disk. Missing or broken files keep the fallback.
func LoadFontFile(name FontName, path string, size float64) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: font %s not loaded from %s: %v", name, path, err)
		return
	}
	LoadFontWithSize(name, ttf, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: font %s failed to parse: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		return basicfont.Face7x13
	}
	return f
}
