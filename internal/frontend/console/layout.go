package console

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
)

// boxWidth is the number of columns between the vertical borders of a box.
const boxWidth = 36

var (
	boxTop     = "┌" + strings.Repeat("─", boxWidth) + "┐"
	boxDivider = "├" + strings.Repeat("─", boxWidth) + "┤"
	boxBottom  = "└" + strings.Repeat("─", boxWidth) + "┘"
)

// center pads s with spaces to width columns, extra space going to the right.
// Escape sequences do not count toward the width.
func center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// padRight pads s with spaces to width columns.
func padRight(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// wrap word-wraps each paragraph of text to width columns.
func wrap(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = wordwrap.String(l, width)
	}
	return strings.Join(lines, "\n")
}

// box accumulates the lines of a bordered panel.
type box struct {
	lines []string
}

func (b *box) title(s string) *box {
	b.lines = append(b.lines, "│"+center(s, boxWidth)+"│")
	return b
}

func (b *box) line(s string) *box {
	b.lines = append(b.lines, "│"+padRight(s, boxWidth)+"│")
	return b
}

func (b *box) blank() *box {
	return b.line("")
}

func (b *box) divider() *box {
	b.lines = append(b.lines, boxDivider)
	return b
}

// String renders the panel with its top and bottom borders.
func (b *box) String() string {
	var sb strings.Builder
	sb.WriteString(boxTop)
	sb.WriteByte('\n')
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteString(boxBottom)
	sb.WriteByte('\n')
	return sb.String()
}

// banner is a box holding a single centred heading.
func banner(heading string) string {
	return (&box{}).title(heading).String()
}
