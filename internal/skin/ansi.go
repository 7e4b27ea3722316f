package skin

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	previewWidth = 8
)

// colourPreview renders a solid colour block using a truecolor background
// escape with spaces.
func colourPreview(c RGB) string {
	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", previewWidth) + ansiReset
}

// PreviewString formats a profile with a colour swatch for terminal output.
func (p Profile) PreviewString() string {
	return fmt.Sprintf("%s %s", colourPreview(p.RGB), p.String())
}
