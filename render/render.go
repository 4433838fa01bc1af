// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"math"
)

// Params holds the visual knobs shared by every style, so switching
// style is a pure render-function swap.
type Params struct {
	Width  int
	Height int

	// BarWidth is the fraction of a bar slot that is filled, 0..1.
	BarWidth float64
	// Opacity applied to the fill and edge colors, 0..1.
	Opacity float64
	// YLim is the intensity value that maps to full deflection.
	YLim float64

	Background color.RGBA
	Fill       color.RGBA
	Edge       color.RGBA
}

// Frame rasterizes one video frame from a sequence of intensities.
// It is a pure function: same inputs, same pixels.
func Frame(style Style, intensities []float64, p Params) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	fillRect(img, 0, 0, p.Width, p.Height, p.Background)

	if len(intensities) == 0 {
		return img
	}

	fill := blend(p.Background, p.Fill, p.Opacity)
	edge := blend(p.Background, p.Edge, p.Opacity)

	switch style {
	case Line:
		drawLine(img, intensities, p, fill)
	case Circle:
		drawCircle(img, intensities, p, fill)
	default:
		drawBars(img, intensities, p, fill, edge)
	}

	return img
}

func drawBars(img *image.RGBA, intensities []float64, p Params, fill, edge color.RGBA) {
	n := len(intensities)
	slot := float64(p.Width) / float64(n)

	for j, v := range intensities {
		h := int(deflection(v, p.YLim) * float64(p.Height))
		if h <= 0 {
			continue
		}

		bw := max(int(slot*p.BarWidth), 1)
		x0 := int(float64(j)*slot + (slot-float64(bw))/2)
		y0 := p.Height - h

		fillRect(img, x0, y0, x0+bw, p.Height, fill)
		strokeRect(img, x0, y0, x0+bw, p.Height, edge)
	}
}

func drawLine(img *image.RGBA, intensities []float64, p Params, stroke color.RGBA) {
	n := len(intensities)
	slot := float64(p.Width) / float64(n)

	px, py := 0, 0
	for j, v := range intensities {
		x := int(float64(j)*slot + slot/2)
		y := p.Height - 1 - int(deflection(v, p.YLim)*float64(p.Height-1))

		if j == 0 {
			setPixel(img, x, y, stroke)
		} else {
			drawSegment(img, px, py, x, y, stroke)
		}
		px, py = x, y
	}
}

func drawCircle(img *image.RGBA, intensities []float64, p Params, fill color.RGBA) {
	n := len(intensities)
	for j, v := range intensities {
		x, y := circlePoint(j, n, v, p)
		drawDot(img, x, y, dotRadius, fill)
	}
}

const dotRadius = 3

// circlePoint places intensity j of n on the ring. Index 0 sits at 0°
// (east) and indices advance counter-clockwise; the radius grows
// linearly with intensity between ringMin and ringMax of the shorter
// frame dimension.
func circlePoint(j, n int, intensity float64, p Params) (x, y int) {
	const (
		ringMin = 0.15
		ringMax = 0.45
	)

	cx := float64(p.Width) / 2
	cy := float64(p.Height) / 2
	span := float64(min(p.Width, p.Height))

	r := (ringMin + deflection(intensity, p.YLim)*(ringMax-ringMin)) * span
	theta := 2 * math.Pi * float64(j) / float64(n)

	return int(math.Round(cx + r*math.Cos(theta))), int(math.Round(cy - r*math.Sin(theta)))
}

// deflection maps an intensity into [0, 1] against the configured
// y-limit.
func deflection(v, ylim float64) float64 {
	if ylim <= 0 {
		return 0
	}
	f := v / ylim
	return math.Min(math.Max(f, 0), 1)
}

func blend(base, top color.RGBA, a float64) color.RGBA {
	a = math.Min(math.Max(a, 0), 1)
	mix := func(b, t uint8) uint8 {
		return uint8(math.Round(float64(b)*(1-a) + float64(t)*a))
	}
	return color.RGBA{
		R: mix(base.R, top.R),
		G: mix(base.G, top.G),
		B: mix(base.B, top.B),
		A: 0xff,
	}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetRGBA(x, y, c)
	}
}

// fillRect fills the half-open rectangle [x0,x1)×[y0,y1).
func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setPixel(img, x, y, c)
		}
	}
}

// strokeRect draws a 1px border just inside [x0,x1)×[y0,y1).
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x < x1; x++ {
		setPixel(img, x, y0, c)
		setPixel(img, x, y1-1, c)
	}
	for y := y0; y < y1; y++ {
		setPixel(img, x0, y, c)
		setPixel(img, x1-1, y, c)
	}
}

// drawSegment rasterizes a line with the integer Bresenham walk.
func drawSegment(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		setPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func drawDot(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				setPixel(img, x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
