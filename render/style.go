// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

// Style selects how intensities are drawn.
type Style uint8

const (
	// Bars draws one vertical bar per intensity.
	Bars Style = iota
	// Line connects the intensities with a single polyline.
	Line
	// Circle places the intensities around a ring, radius following
	// intensity.
	Circle
)

var ErrUnknownStyle = errors.New("unsupported waveform style")

// ParseStyle maps a flag value to a Style.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "bars":
		return Bars, nil
	case "line":
		return Line, nil
	case "circle":
		return Circle, nil
	default:
		return 0, ErrUnknownStyle
	}
}

func (s Style) String() string {
	switch s {
	case Bars:
		return "bars"
	case Line:
		return "line"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}
