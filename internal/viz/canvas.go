package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FieldCanvas shades a vorticity grid onto a character-cell raster. Each
// cell averages the grid points that fall inside it, so any grid size maps
// onto any terminal size.
type FieldCanvas struct {
	Width, Height int
}

func NewFieldCanvas(w, h int) *FieldCanvas {
	return &FieldCanvas{Width: w, Height: h}
}

// Render draws the samples with the current theme. Values are normalized by
// cmax: magnitude picks the ramp character, sign picks the color. Rows run
// top to bottom with y increasing upward and x increasing to the right.
func (c *FieldCanvas) Render(samples [][]float64, cmax float64) string {
	m := len(samples)
	if m == 0 || c.Width <= 0 || c.Height <= 0 {
		return ""
	}
	if cmax <= 0 {
		cmax = 1
	}

	positive := lipgloss.NewStyle().Foreground(CurrentTheme.Positive)
	negative := lipgloss.NewStyle().Foreground(CurrentTheme.Negative)
	ramp := CurrentTheme.Ramp

	var b strings.Builder
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			v := blockAverage(samples, col, c.Width, c.Height-1-row, c.Height)
			t := v / cmax
			if t > 1 {
				t = 1
			} else if t < -1 {
				t = -1
			}

			idx := int(math.Abs(t) * float64(len(ramp)-1))
			ch := string(ramp[idx])
			if t >= 0 {
				b.WriteString(positive.Render(ch))
			} else {
				b.WriteString(negative.Render(ch))
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// blockAverage averages samples[i][j] over the grid points mapping to screen
// cell (cx, cy), with i the x index and j the y index.
func blockAverage(samples [][]float64, cx, nx, cy, ny int) float64 {
	m := len(samples)
	i0, i1 := cx*m/nx, (cx+1)*m/nx
	j0, j1 := cy*m/ny, (cy+1)*m/ny
	if i1 <= i0 {
		i1 = i0 + 1
	}
	if j1 <= j0 {
		j1 = j0 + 1
	}

	sum, count := 0.0, 0
	for i := i0; i < i1 && i < m; i++ {
		for j := j0; j < j1 && j < m; j++ {
			sum += samples[i][j]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
