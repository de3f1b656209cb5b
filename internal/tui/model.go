// Package tui is the interactive terminal frontend. The Model is both the
// input form and the renderer of its inventory.
package tui

import (
	"fmt"
	"strings"

	"github.com/amterp/paintbox/internal/inventory"
	"github.com/amterp/paintbox/internal/model"
	"github.com/amterp/paintbox/internal/store"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// EmptyMessage is shown instead of rows when there is nothing to list.
const EmptyMessage = "No paints yet"

type focusArea int

const (
	focusName focusArea = iota
	focusColor
	focusList
	focusCount
)

// Model is the bubbletea model for `paintbox tui`.
type Model struct {
	inv   *inventory.Inventory
	name  textinput.Model
	color textinput.Model
	help  help.Model

	focus  focusArea
	items  []model.PaintItem
	cursor int
	status string
	width  int
}

var (
	_ tea.Model          = (*Model)(nil)
	_ inventory.Form     = (*Model)(nil)
	_ inventory.Renderer = (*Model)(nil)
)

// New creates a model over itemStore and loads the inventory.
func New(itemStore store.ItemStore, log *zap.Logger) *Model {
	name := textinput.New()
	name.Placeholder = "Paint name"
	name.CharLimit = 80
	name.Width = 32
	name.Focus()

	color := textinput.New()
	color.Placeholder = model.DefaultColor
	color.CharLimit = 32
	color.Width = 12

	m := &Model{
		name:  name,
		color: color,
		help:  help.New(),
	}
	m.inv = inventory.New(itemStore, m, log)
	m.inv.Start()
	m.color.SetValue(model.NextColor(len(m.items)))
	return m
}

// Name implements inventory.Form.
func (m *Model) Name() string {
	return m.name.Value()
}

// Color implements inventory.Form.
func (m *Model) Color() string {
	return m.color.Value()
}

// ClearName implements inventory.Form.
func (m *Model) ClearName() {
	m.name.Reset()
}

// Render implements inventory.Renderer. The next View reflects items.
func (m *Model) Render(items []model.PaintItem) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
}

// Items returns what was last rendered.
func (m *Model) Items() []model.PaintItem {
	return m.items
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextField):
			return m, m.setFocus((m.focus + 1) % focusCount)
		case key.Matches(msg, keys.PrevField):
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case key.Matches(msg, keys.Add) && m.focus != focusList:
			m.submit()
			return m, nil
		}

		if m.focus == focusList {
			m.updateList(msg)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusColor:
		m.color, cmd = m.color.Update(msg)
	}
	return m, cmd
}

func (m *Model) submit() {
	name := model.NormalizeName(m.Name())
	if !m.inv.AddItem(m) {
		return
	}
	m.status = fmt.Sprintf("Added %s", name)
	m.color.SetValue(model.NextColor(len(m.items)))
}

func (m *Model) updateList(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Delete):
		if len(m.items) == 0 {
			return
		}
		name := m.items[m.cursor].Name
		if m.inv.DeleteItem(m.cursor) {
			m.status = fmt.Sprintf("Deleted %s", name)
		}
	}
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.name.Blur()
	m.color.Blur()
	switch f {
	case focusName:
		return m.name.Focus()
	case focusColor:
		return m.color.Focus()
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Paint inventory"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel("Name", focusName) + m.name.View() + "\n")
	b.WriteString(m.fieldLabel("Color", focusColor) + m.color.View() + " " +
		swatch(m.color.Value(), model.IsHexColor(m.color.Value())) + "\n\n")

	b.WriteString(styles.Box.Render(m.listView()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(styles.Muted.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) fieldLabel(label string, f focusArea) string {
	if m.focus == f {
		return styles.Focused.Render(label)
	}
	return styles.Label.Render(label)
}

func (m *Model) listView() string {
	if len(m.items) == 0 {
		return styles.Empty.Render(EmptyMessage)
	}

	rows := make([]string, len(m.items))
	for i, item := range m.items {
		marker := "  "
		nameStyle := styles.Normal
		if m.focus == focusList && i == m.cursor {
			marker = styles.Selected.Render("› ")
			nameStyle = styles.Selected
		}
		rows[i] = fmt.Sprintf("%s%s %s %s", marker,
			swatch(item.Color, model.IsHexColor(item.Color)),
			nameStyle.Render(item.Name),
			styles.Muted.Render("✕"))
	}
	return strings.Join(rows, "\n")
}
