package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared styles for command output and the live view. Colors use ANSI 256
// codes so the palette degrades cleanly on basic terminals.
var (
	// HeaderStyle titles a section of command output or the live panel.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// Subtle is for secondary text: captions, empty-state messages, rules.
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	// metricLabel and metricValue form the aligned rows built by MetricRow.
	metricLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	metricValue = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	// KeyHint renders the keyboard hints under the live view.
	KeyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)

	// ChartStyle colors terminal charts and sparklines.
	ChartStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))

	// Status indicators for the live view.
	StatusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("84"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	StatusError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// MetricRow renders one aligned label/value line for a stats panel.
func MetricRow(label, value string) string {
	return metricLabel.Render(label) + metricValue.Render(value)
}

// ProgressBar renders completion as a width-character bar. The fill turns
// green once the run finishes.
func ProgressBar(frac float64, width int) string {
	if width <= 0 {
		return ""
	}

	fill := int(math.Round(frac * float64(width)))
	switch {
	case fill < 0:
		fill = 0
	case fill > width:
		fill = width
	}

	style := metricValue
	if fill == width {
		style = StatusRunning
	}
	return style.Render(strings.Repeat("█", fill)) + Subtle.Render(strings.Repeat("╌", width-fill))
}

// SparklineChart compresses a series into a single line of bar runes,
// bucket-averaging it down to at most width characters.
func SparklineChart(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return Subtle.Render(strings.Repeat("╌", width))
	}
	return ChartStyle.Render(string(sparkRunes(resample(values, width))))
}

var sparkRamp = []rune("▁▂▃▄▅▆▇█")

// sparkRunes maps values onto the bar ramp, scaled to the series range. A
// flat series maps to the lowest bar.
func sparkRunes(values []float64) []rune {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	runes := make([]rune, len(values))
	for i, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRamp)-1))
		}
		runes[i] = sparkRamp[idx]
	}
	return runes
}

// resample averages values into n equal buckets; series no longer than n
// pass through unchanged.
func resample(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}

	out := make([]float64, n)
	for i := range out {
		start, end := i*len(values)/n, (i+1)*len(values)/n
		sum := 0.0
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}
