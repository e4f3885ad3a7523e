package orbit

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"
)

// Sprite is a square per-pixel color mask drawn centered on a planet's
// computed position. Unset pixels carry zero alpha.
type Sprite struct {
	Name string
	Size int          // width == height, odd so a center pixel exists
	Pix  []color.RGBA // Size*Size, row-major
}

// At returns the sprite pixel at (x, y) in sprite-local coordinates.
func (s *Sprite) At(x, y int) color.RGBA {
	return s.Pix[y*s.Size+x]
}

// Sheet maps lower-case planet names to their sprites.
type Sheet map[string]*Sprite

// ForPlanet returns the sprite for a planet table row.
func (s Sheet) ForPlanet(p Planet) *Sprite {
	return s[strings.ToLower(p.Name)]
}

// spriteSheetJSON is the serialized form of a sprite sheet: each sprite is
// a palette of single-character color keys plus rows of those characters,
// '.' meaning transparent.
type spriteSheetJSON struct {
	Sprites []spriteJSON `json:"sprites"`
}

type spriteJSON struct {
	Name    string            `json:"name"`
	Palette map[string][3]int `json:"palette"`
	Rows    []string          `json:"rows"`
}

// LoadSpriteSheet parses and validates a sprite sheet from JSON bytes.
// Every planet in the table must be covered; malformed art is fatal at
// startup, never something to limp past at render time.
func LoadSpriteSheet(data []byte) (Sheet, error) {
	var sheet spriteSheetJSON
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parse sprite sheet: %w", err)
	}
	if len(sheet.Sprites) == 0 {
		return nil, fmt.Errorf("sprite sheet is empty")
	}

	out := make(Sheet, len(sheet.Sprites))
	for _, raw := range sheet.Sprites {
		sp, err := buildSprite(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := out[sp.Name]; dup {
			return nil, fmt.Errorf("duplicate sprite %q", sp.Name)
		}
		out[sp.Name] = sp
	}

	for _, p := range Planets {
		if out.ForPlanet(p) == nil {
			return nil, fmt.Errorf("no sprite for planet %s", p.Name)
		}
	}
	return out, nil
}

func buildSprite(raw spriteJSON) (*Sprite, error) {
	if raw.Name == "" {
		return nil, fmt.Errorf("sprite with no name")
	}
	size := len(raw.Rows)
	if size == 0 {
		return nil, fmt.Errorf("sprite %q has no rows", raw.Name)
	}
	if size%2 == 0 {
		return nil, fmt.Errorf("sprite %q: size %d is even, center pixel needs an odd size", raw.Name, size)
	}

	palette := make(map[byte]color.RGBA, len(raw.Palette))
	for key, rgb := range raw.Palette {
		if len(key) != 1 {
			return nil, fmt.Errorf("sprite %q: palette key %q is not a single character", raw.Name, key)
		}
		for _, c := range rgb {
			if c < 0 || c > 255 {
				return nil, fmt.Errorf("sprite %q: palette %q component %d out of range", raw.Name, key, c)
			}
		}
		palette[key[0]] = color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}
	}

	sp := &Sprite{Name: raw.Name, Size: size, Pix: make([]color.RGBA, size*size)}
	for y, row := range raw.Rows {
		if len(row) != size {
			return nil, fmt.Errorf("sprite %q: row %d is %d chars, want %d", raw.Name, y, len(row), size)
		}
		for x := 0; x < size; x++ {
			ch := row[x]
			if ch == '.' {
				continue // transparent
			}
			c, ok := palette[ch]
			if !ok {
				return nil, fmt.Errorf("sprite %q: row %d has unknown palette char %q", raw.Name, y, string(ch))
			}
			sp.Pix[y*size+x] = c
		}
	}
	return sp, nil
}
