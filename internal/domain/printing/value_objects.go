package printing

// Margins represents the page margins in millimeters
type Margins struct {
	Top    int `json:"top"`    // Top margin in mm
	Right  int `json:"right"`  // Right margin in mm
	Bottom int `json:"bottom"` // Bottom margin in mm
	Left   int `json:"left"`   // Left margin in mm
}

// DefaultMargins returns the default page margins for A4 paper
func DefaultMargins() Margins {
	return Margins{
		Top:    10,
		Right:  10,
		Bottom: 10,
		Left:   10,
	}
}

// Usable returns the printable area of a sheet once margins are removed
func (m Margins) Usable(size PaperSize, orientation Orientation) (width, height int) {
	width, height = size.Dimensions()
	if orientation == OrientationLandscape {
		width, height = height, width
	}
	return width - m.Left - m.Right, height - m.Top - m.Bottom
}
