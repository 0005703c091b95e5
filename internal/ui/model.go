// Package ui renders the order grid: one row per category/size pair, one
// column per day of the active window. Edits go through the session
// controller; saves and reloads run as background commands so typing stays
// responsive while a request is in flight.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orderpad/internal/datewindow"
	"orderpad/internal/export"
	"orderpad/internal/order"
	"orderpad/internal/session"
	"orderpad/internal/sheetsync"
)

// Options configure the UI.
type Options struct {
	Context    context.Context
	Controller *session.Controller
	Client     *sheetsync.Client
	ExportPath string
}

// syncState tracks one save or reload cycle: Idle -> InFlight ->
// Success/Failed. Each request is fire-and-forget; a second save while one
// is in flight just produces two independent requests.
type syncState int

const (
	syncIdle syncState = iota
	syncInFlight
	syncSuccess
	syncFailed
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	ctrl       *session.Controller
	client     *sheetsync.Client
	exportPath string

	keys   keyMap
	help   help.Model
	theme  Theme
	styles Styles

	width  int
	height int

	row     int // index into the table's items
	col     int // 0..datewindow.Size-1
	editing bool
	input   textinput.Model

	sync     syncState
	statusOK bool
	status   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	input := textinput.New()
	input.CharLimit = 6
	input.Width = cellWidth - 1
	input.Prompt = ""
	input.Validate = validateQuantityInput

	theme := DefaultTheme()
	return Model{
		ctx:        ctx,
		ctrl:       opts.Controller,
		client:     opts.Client,
		exportPath: opts.ExportPath,
		keys:       defaultKeyMap(),
		help:       help.New(),
		theme:      theme,
		styles:     theme.Styles(),
		input:      input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case syncDoneMsg:
		if msg.err != nil {
			m.sync = syncFailed
			m.setStatus(false, fmt.Sprintf("save failed: %v — is the relay proxy running and remote_url correct?", msg.err))
		} else {
			m.sync = syncSuccess
			m.setStatus(true, "saved to sheet")
		}
		return m, nil

	case importDoneMsg:
		if msg.err != nil {
			m.sync = syncFailed
			m.setStatus(false, fmt.Sprintf("reload failed, keeping local data: %v", msg.err))
			return m, nil
		}
		m.ctrl.ReplaceTable(msg.table)
		m.sync = syncSuccess
		m.clampCursor()
		m.setStatus(true, "reloaded from sheet")
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus(false, fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.setStatus(true, "exported "+msg.path)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < len(m.items())-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < datewindow.Size-1 {
			m.col++
		}

	case key.Matches(msg, m.keys.WindowBack):
		m.ctrl.ShiftBack()
	case key.Matches(msg, m.keys.WindowForward):
		m.ctrl.ShiftForward()

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.Save):
		m.sync = syncInFlight
		m.setStatus(true, "saving…")
		keys, _ := m.ctrl.Window()
		env := sheetsync.ExportAll(m.ctrl.Table(), keys[:])
		return m, saveCmd(m.ctx, m.client, env)

	case key.Matches(msg, m.keys.Reload):
		m.sync = syncInFlight
		m.setStatus(true, "reloading…")
		return m, reloadCmd(m.ctx, m.client)

	case key.Matches(msg, m.keys.Export):
		keys, _ := m.ctrl.Window()
		env := sheetsync.ExportAll(m.ctrl.Table(), keys[:])
		return m, exportCmd(m.exportPath, env)
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.commitEdit()

	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}
	keys, _ := m.ctrl.Window()
	qty := m.ctrl.Quantity(item.Category, item.Size, keys[m.col])

	m.editing = true
	m.input.SetValue(strconv.Itoa(qty))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// commitEdit coerces the typed value to a number and stores it, explicit
// zero included. Unparseable input is discarded.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	m.editing = false
	m.input.Blur()

	item, ok := m.selectedItem()
	if !ok {
		return m, nil
	}

	qty, ok := parseQuantity(m.input.Value())
	if !ok {
		m.setStatus(false, fmt.Sprintf("not a number: %q", m.input.Value()))
		return m, nil
	}
	keys, _ := m.ctrl.Window()
	m.ctrl.SetQuantity(item.Category, item.Size, keys[m.col], qty)
	m.setStatus(true, "")
	return m, nil
}

func (m Model) items() []order.Item {
	return m.ctrl.Table().Items()
}

func (m Model) selectedItem() (order.Item, bool) {
	items := m.items()
	if m.row < 0 || m.row >= len(items) {
		return order.Item{}, false
	}
	return items[m.row], true
}

func (m *Model) clampCursor() {
	if n := len(m.items()); m.row >= n && n > 0 {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) setStatus(ok bool, text string) {
	m.statusOK = ok
	m.status = text
}

// validateQuantityInput keeps the cell editor numeric while typing: an
// optional leading sign followed by digits. A bare sign is allowed so a
// negative number can be typed at all; parseQuantity still decides the
// final value on commit.
func validateQuantityInput(s string) error {
	for i, r := range s {
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("not a digit: %q", r)
		}
	}
	return nil
}

// parseQuantity coerces grid input to an integer. Empty input means zero;
// sign is not rejected, matching the boundary contract.
func parseQuantity(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true
	}
	qty, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return qty, true
}

// Messages

type syncDoneMsg struct{ err error }

type importDoneMsg struct {
	table order.Table
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}

// Commands

func saveCmd(ctx context.Context, client *sheetsync.Client, env sheetsync.Envelope) tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: client.Push(ctx, env)}
	}
}

func reloadCmd(ctx context.Context, client *sheetsync.Client) tea.Cmd {
	return func() tea.Msg {
		table, err := client.Import(ctx)
		return importDoneMsg{table: table, err: err}
	}
}

func exportCmd(path string, env sheetsync.Envelope) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: path, err: export.WriteWorkbook(path, env)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Controller == nil {
		return fmt.Errorf("ui requires a session controller")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
