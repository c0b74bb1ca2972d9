package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/homedeck/pkg/grid"
	"github.com/matzehuels/homedeck/pkg/service"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// Grid Rendering
// =============================================================================

// Cell dimensions for the terminal grid. A widget spanning c columns and r
// rows occupies c*(cellWidth+2) + (c-1) terminal columns and r*(cellHeight+2)
// terminal lines including its border.
const (
	cellWidth  = 26 // interior characters per grid column
	cellHeight = 3  // interior lines per grid row
	columnGap  = 1  // blank columns between adjacent widgets
)

// renderGrid draws a layout as bordered boxes on a character canvas. Widgets
// are drawn at their stored Row/Column using the spans of their size, so the
// output mirrors what a dashboard client would show.
func renderGrid(l grid.Layout, services []service.Service) string {
	if len(l.Widgets) == 0 {
		return StyleDim.Render("  (empty layout)")
	}

	width := grid.Columns*(cellWidth+2) + (grid.Columns-1)*columnGap
	height := l.Rows() * (cellHeight + 2)

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for _, w := range l.Widgets {
		drawWidget(canvas, w, services)
	}

	var b strings.Builder
	for _, line := range canvas {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// drawWidget draws a single bordered widget box onto the canvas.
func drawWidget(canvas [][]rune, w grid.Widget, services []service.Service) {
	cs := w.Size.ColumnSpan()
	rs := w.Size.RowSpan()

	x := w.Column * (cellWidth + 2 + columnGap)
	y := w.Row * (cellHeight + 2)
	boxW := cs*(cellWidth+2) + (cs-1)*columnGap
	boxH := rs * (cellHeight + 2)

	if y+boxH > len(canvas) || x+boxW > len(canvas[0]) {
		return
	}

	drawBox(canvas, x, y, boxW, boxH)

	lines := widgetLines(w, services)
	maxLines := boxH - 2
	for i, line := range lines {
		if i >= maxLines {
			break
		}
		drawText(canvas, x+2, y+1+i, line, boxW-4)
	}
}

// drawBox draws a rounded border rectangle.
func drawBox(canvas [][]rune, x, y, w, h int) {
	for i := x + 1; i < x+w-1; i++ {
		canvas[y][i] = '─'
		canvas[y+h-1][i] = '─'
	}
	for i := y + 1; i < y+h-1; i++ {
		canvas[i][x] = '│'
		canvas[i][x+w-1] = '│'
	}
	canvas[y][x] = '╭'
	canvas[y][x+w-1] = '╮'
	canvas[y+h-1][x] = '╰'
	canvas[y+h-1][x+w-1] = '╯'
}

// drawText writes a string at (x, y), truncated to maxLen characters.
func drawText(canvas [][]rune, x, y int, s string, maxLen int) {
	runes := []rune(s)
	if len(runes) > maxLen {
		if maxLen > 1 {
			runes = append(runes[:maxLen-1], '…')
		} else {
			runes = runes[:maxLen]
		}
	}
	for i, r := range runes {
		canvas[y][x+i] = r
	}
}

// widgetLines builds the text shown inside a widget box: a title line, a
// size/kind line, and the selected metric names.
func widgetLines(w grid.Widget, services []service.Service) []string {
	title := w.Title
	kind := w.Metrics.Kind
	if svc := service.ByID(services, w.ServiceID); svc != nil {
		if title == "" {
			title = svc.Name
		}
		kind = svc.Kind
	}
	if title == "" {
		title = w.ServiceID
	}

	lines := []string{title, fmt.Sprintf("%s · %s", kind, w.Size)}
	if names := w.Metrics.Names(); len(names) > 0 {
		lines = append(lines, strings.Join(names, " "))
	}
	return lines
}
