package components

import (
	"fmt"
	"math"
	"strings"
)

// chartBlocks are block characters from empty to full, used for rendering
// the chart area. Index 0 is empty (space), index 8 is full block.
var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// labelWidth is the width of the Y-axis label column, e.g. " 110ms ".
const labelWidth = 8

// RenderChart renders a latency chart using block characters.
// data: latencies in milliseconds, oldest to newest; NaN marks a lost sample
// and is drawn as an empty column
// upper: Y-axis maximum; the axis always starts at 0
// width: total width in characters (including Y-axis labels)
// height: total height in characters (including title row)
func RenderChart(data []float64, upper float64, width, height int, title string) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}
	if upper <= 0 || math.IsNaN(upper) {
		upper = 1
	}

	chartWidth := width - labelWidth
	if chartWidth < 2 {
		chartWidth = 2
	}
	chartHeight := height - 1
	if chartHeight < 2 {
		chartHeight = 2
	}

	lines := []string{centerText(title, width)}

	if len(data) > chartWidth {
		data = data[len(data)-chartWidth:]
	}
	padding := chartWidth - len(data)

	for row := chartHeight - 1; row >= 0; row-- {
		cellBottom := upper * float64(row) / float64(chartHeight)
		cellTop := upper * float64(row+1) / float64(chartHeight)

		label := fmt.Sprintf("%6s ", FormatMillis(cellTop))
		if len(label) > labelWidth {
			label = label[len(label)-labelWidth:]
		}
		label = padLeftTo(label, labelWidth)

		rowChars := make([]rune, 0, chartWidth)
		for p := 0; p < padding; p++ {
			rowChars = append(rowChars, ' ')
		}
		for _, v := range data {
			rowChars = append(rowChars, cellRune(v, cellBottom, cellTop))
		}
		lines = append(lines, label+string(rowChars))
	}

	return strings.Join(lines, "\n")
}

// cellRune returns the block for value v within one chart cell. In the
// bottom row every measured value gets at least the lowest block, so only a
// lost sample leaves the column empty.
func cellRune(v, cellBottom, cellTop float64) rune {
	floor := 0
	if cellBottom <= 0 {
		floor = 1
	}
	switch {
	case math.IsNaN(v):
		return ' '
	case v <= cellBottom:
		return chartBlocks[floor]
	case v >= cellTop:
		return chartBlocks[8]
	}
	fraction := (v - cellBottom) / (cellTop - cellBottom)
	idx := int(math.Round(fraction * 8))
	if idx < floor {
		idx = floor
	}
	if idx > 8 {
		idx = 8
	}
	return chartBlocks[idx]
}

// centerText centers s within the given width, padding with spaces.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}

func padLeftTo(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
