package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

var (
	defaultClipboard = clipboard.WriteAll
	// writeClipboard is replaced in tests.
	writeClipboard = defaultClipboard
)

type browseModel struct {
	ctx     context.Context
	storage Storage

	keys    []string
	idx     int
	loading bool
	spinner spinner.Model

	detail bool
	reveal bool
	value  *string

	confirm bool

	status string
	errMsg string
}

func newBrowseModel(ctx context.Context, storage Storage) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browseModel{ctx: ctx, storage: storage, loading: true, spinner: s}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadKeys())
}

func (m browseModel) current() (string, bool) {
	if len(m.keys) == 0 || m.idx < 0 || m.idx >= len(m.keys) {
		return "", false
	}
	return m.keys[m.idx], true
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case keysLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.keys = msg.keys
		if m.idx >= len(m.keys) {
			m.idx = len(m.keys) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case valueLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if k, ok := m.current(); !ok || k != msg.key {
			return m, nil
		}
		m.errMsg = ""
		m.value = msg.value
		m.detail = true
		m.reveal = false
		return m, nil
	case itemDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.detail = false
		m.value = nil
		m.loading = true
		return m, tea.Batch(m.setStatus("Deleted "+msg.key), m.cmdLoadKeys())
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m browseModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = false
			k, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(k)
		case key.Matches(msg, keys.no):
			m.confirm = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.detail {
		switch {
		case key.Matches(msg, keys.esc):
			m.detail = false
			m.reveal = false
			m.value = nil
		case key.Matches(msg, keys.reveal):
			m.reveal = !m.reveal
		case key.Matches(msg, keys.copy):
			if m.value == nil {
				return m, m.setStatus("Nothing to copy")
			}
			if err := writeClipboard(*m.value); err != nil {
				m.errMsg = "Copy failed: " + err.Error()
				return m, nil
			}
			return m, m.setStatus("Copied")
		case key.Matches(msg, keys.delete):
			m.confirm = true
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.keys)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadKeys()
	case key.Matches(msg, keys.enter):
		k, ok := m.current()
		if !ok {
			return m, m.setStatus("No keys")
		}
		m.loading = true
		return m, m.cmdLoadValue(k)
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirm = true
		}
	}

	return m, nil
}

func (m *browseModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browseModel) cmdLoadKeys() tea.Cmd {
	ctx, storage := m.ctx, m.storage
	return func() tea.Msg {
		keys, err := storage.Keys(ctx)
		return keysLoadedMsg{keys: keys, err: err}
	}
}

func (m browseModel) cmdLoadValue(k string) tea.Cmd {
	ctx, storage := m.ctx, m.storage
	return func() tea.Msg {
		value, err := storage.GetItem(ctx, k)
		return valueLoadedMsg{key: k, value: value, err: err}
	}
}

func (m browseModel) cmdDelete(k string) tea.Cmd {
	ctx, storage := m.ctx, m.storage
	return func() tea.Msg {
		return itemDeletedMsg{key: k, err: storage.RemoveItem(ctx, k)}
	}
}
