package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"orderpad/internal/datewindow"
	"orderpad/internal/order"
)

const (
	cellWidth    = 8
	minItemWidth = 12
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	keys, labels := m.ctrl.Window()
	items := m.items()
	itemWidth := itemColumnWidth(items)

	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")
	b.WriteString(m.renderHeader(labels, itemWidth))
	b.WriteString("\n")

	for row, item := range items {
		b.WriteString(m.renderRow(row, item, keys, itemWidth))
		b.WriteString("\n")
	}
	if len(items) == 0 {
		b.WriteString(m.styles.MutedText.Render("no items — check the seed catalog in the config"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTitle() string {
	title := m.styles.Title.Render("orderpad")
	date := m.ctrl.Today().Format("Mon Jan 02 2006")
	offset := ""
	if o := m.ctrl.Offset(); o != 0 {
		offset = fmt.Sprintf("  window %+dd", o)
	}
	return title + m.styles.MutedText.Render("  "+date+offset)
}

func (m Model) renderHeader(labels [datewindow.Size]string, itemWidth int) string {
	var b strings.Builder
	b.WriteString(m.styles.ColumnHeader.Render(pad(order.HeaderSentinel, itemWidth)))
	for col, label := range labels {
		text := padLeft(label, cellWidth)
		if col == datewindow.Center && m.ctrl.Offset() == 0 {
			b.WriteString(m.styles.TodayHeader.Render(text))
			continue
		}
		b.WriteString(m.styles.ColumnHeader.Render(text))
	}
	return b.String()
}

func (m Model) renderRow(row int, item order.Item, keys [datewindow.Size]string, itemWidth int) string {
	var b strings.Builder
	b.WriteString(m.styles.ItemLabel.Render(pad(order.JoinItem(item.Category, item.Size), itemWidth)))

	for col := 0; col < datewindow.Size; col++ {
		selected := row == m.row && col == m.col
		if selected && m.editing {
			b.WriteString(m.styles.SelectedCell.Render(padLeft(m.input.View(), cellWidth)))
			continue
		}
		qty := m.ctrl.Quantity(item.Category, item.Size, keys[col])
		text := padLeft(formatQuantity(qty), cellWidth)
		switch {
		case selected:
			b.WriteString(m.styles.SelectedCell.Render(text))
		case qty == 0:
			b.WriteString(m.styles.ZeroCell.Render(text))
		default:
			b.WriteString(m.styles.Cell.Render(text))
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	state := ""
	switch m.sync {
	case syncInFlight:
		state = "sync: in flight"
	case syncSuccess:
		state = "sync: ok"
	case syncFailed:
		state = "sync: failed"
	}

	line := m.styles.StatusBar.Render(state)
	if m.status == "" {
		return line
	}
	msg := m.status
	if m.statusOK {
		return line + "  " + m.styles.SuccessText.Render(msg)
	}
	return line + "  " + m.styles.DangerText.Render(msg)
}

// formatQuantity renders zero as a dot so filled cells stand out.
func formatQuantity(qty int) string {
	if qty == 0 {
		return "·"
	}
	return fmt.Sprintf("%d", qty)
}

func itemColumnWidth(items []order.Item) int {
	width := minItemWidth
	for _, item := range items {
		if n := lipgloss.Width(order.JoinItem(item.Category, item.Size)) + 2; n > width {
			width = n
		}
	}
	return width
}

// pad and padLeft measure with lipgloss.Width, which ignores ANSI
// sequences and counts display cells, so styled and multi-byte content
// still lines up.
func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
