package entity

// DisplaySettings controls how Arabic lesson content is rendered for one request.
// The defaults come from configuration and are passed explicitly to renderers.
type DisplaySettings struct {
	FontSize            int  `json:"font_size"`
	ShowTranslation     bool `json:"show_translation"`
	ShowTransliteration bool `json:"show_transliteration"`
}

// FontSizeBounds limits user supplied font sizes.
type FontSizeBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp keeps size inside the bounds. Zero bounds leave size untouched.
func (b FontSizeBounds) Clamp(size int) int {
	if b.Min > 0 && size < b.Min {
		return b.Min
	}
	if b.Max > 0 && size > b.Max {
		return b.Max
	}

	return size
}

// WithFontSize returns a copy with a clamped font size.
func (d DisplaySettings) WithFontSize(size int, bounds FontSizeBounds) DisplaySettings {
	d.FontSize = bounds.Clamp(size)

	return d
}

// WithTranslation returns a copy with translation visibility set.
func (d DisplaySettings) WithTranslation(show bool) DisplaySettings {
	d.ShowTranslation = show

	return d
}

// WithTransliteration returns a copy with transliteration visibility set.
func (d DisplaySettings) WithTransliteration(show bool) DisplaySettings {
	d.ShowTransliteration = show

	return d
}
