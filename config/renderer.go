package config

// PaletteKeys are the texture identifiers a renderer config may map
var PaletteKeys = []string{"r", "g", "b", "c", "m", "y", "w", "k", "NULL"}

// Text configures the terminal renderer
type Text struct {
	// Palette maps texture identifiers to the character drawn for them
	Palette map[string]string
}

// TextFromValues picks the palette entries out of v
func TextFromValues(v Values) Text {
	return Text{Palette: palette(v)}
}

// Graphical configures the window renderer
type Graphical struct {
	Title    string
	Font     string
	TileSize int
	FontSize int

	// Palette maps texture identifiers to colour names or #rrggbb
	Palette map[string]string
}

// DefaultGraphical returns the window defaults with an empty palette
func DefaultGraphical() Graphical {
	return Graphical{
		Title:    "renderer",
		Font:     "FreeMono",
		TileSize: 20,
		FontSize: 20,
		Palette:  map[string]string{},
	}
}

// GraphicalFromValues overlays v on the window defaults
func GraphicalFromValues(v Values) (Graphical, error) {
	g := DefaultGraphical()
	g.Title = v.String("title", g.Title)
	g.Font = v.String("font", g.Font)

	var err error
	if g.TileSize, err = v.Int("px_per_tile", g.TileSize); err != nil {
		return g, err
	}
	if g.FontSize, err = v.Int("font_size", g.FontSize); err != nil {
		return g, err
	}
	g.Palette = palette(v)
	return g, nil
}

func palette(v Values) map[string]string {
	p := make(map[string]string, len(PaletteKeys))
	for _, k := range PaletteKeys {
		if v.Has(k) {
			p[k] = v.String(k, "")
		}
	}
	return p
}
