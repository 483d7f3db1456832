package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/klabast/wb-services/squeezers-site/internal/news"
)

type mode int

const (
	modeList mode = iota
	modeEdit
)

const (
	titleList   = "News TUI"
	titleEdit   = "News bearbeiten"
	helpList    = "a=Neu  e=Bearb  d=Loesch  u=Hoch  n=Runter  s=Speichern  r=Reload  q=Quit"
	helpEdit    = "(Enter=behalten, '-'=leeren, Esc=abbrechen)"
	emptyList   = "Keine News vorhanden."
	statusSaved = "Gespeichert: %s"
	statusLoad  = "Neu geladen"
	statusAbort = "Bearbeitung abgebrochen"

	// lines taken by title, help, separators and status
	chromeLines = 8
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model of the news editor.
type Model struct {
	store  *news.Store
	list   List
	mode   mode
	status string
	err    error

	// edit state
	editing news.Item
	isNew   bool
	field   int
	input   textinput.Model

	width  int
	height int
}

// New loads the news list from store.
func New(store *news.Store) (Model, error) {
	items, err := store.LoadItems()
	if err != nil {
		return Model{}, err
	}
	input := textinput.New()
	input.Prompt = "> "
	return Model{
		store: store,
		list:  List{Items: items},
		input: input,
	}, nil
}

// Items returns the in-memory list.
func (m Model) Items() []news.Item {
	return m.list.Items
}

// Err returns the error that ended the editor, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == modeEdit {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.list.Up()
	case "down", "j":
		m.list.Down()
	case "a":
		return m.startEdit(news.Item{}, true)
	case "e":
		if it, ok := m.list.Selected(); ok {
			return m.startEdit(it, false)
		}
	case "d":
		m.list.Delete()
	case "u":
		m.list.MoveUp()
	case "n":
		m.list.MoveDown()
	case "s":
		if err := m.store.Write(m.list.Items); err != nil {
			m.err = fmt.Errorf("save news: %w", err)
			return m, tea.Quit
		}
		m.status = fmt.Sprintf(statusSaved, m.store.Path)
	case "r":
		items, err := m.store.LoadItems()
		if err != nil {
			m.err = fmt.Errorf("reload news: %w", err)
			return m, tea.Quit
		}
		m.list = List{Items: items}
		m.status = statusLoad
	}
	return m, nil
}

func (m Model) startEdit(it news.Item, isNew bool) (tea.Model, tea.Cmd) {
	m.mode = modeEdit
	m.editing = it
	m.isNew = isNew
	m.field = 0
	m.resetInput()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) resetInput() {
	f := news.Fields[m.field]
	m.input.SetValue("")
	m.input.Placeholder = m.editing.Get(f.Key)
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.input.Blur()
		m.status = statusAbort
		return m, nil
	case tea.KeyEnter:
		ApplyInput(&m.editing, news.Fields[m.field].Key, m.input.Value())
		m.field++
		if m.field < len(news.Fields) {
			m.resetInput()
			return m, nil
		}
		if m.isNew {
			m.list.Add(m.editing)
		} else {
			m.list.Replace(m.editing)
		}
		m.mode = modeList
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.mode == modeEdit {
		return m.viewEdit()
	}
	return m.viewList()
}

func (m Model) separator() string {
	w := m.width - 4
	if w < 20 {
		w = 40
	}
	return strings.Repeat("-", w)
}

// visibleRange returns the slice of items that fits on screen while
// keeping the selection visible.
func (m Model) visibleRange() (int, int) {
	n := len(m.list.Items)
	rows := m.height - chromeLines
	if m.height == 0 || rows >= n {
		return 0, n
	}
	if rows < 1 {
		rows = 1
	}
	start := 0
	if m.list.Index >= rows {
		start = m.list.Index - rows + 1
	}
	return start, start + rows
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(titleList) + "\n\n")
	b.WriteString(helpList + "\n")
	b.WriteString(m.separator() + "\n\n")

	if len(m.list.Items) == 0 {
		b.WriteString(emptyList + "\n")
	} else {
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			line := fmt.Sprintf("%d. %s", i+1, m.list.Items[i].Summary())
			if i == m.list.Index {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(titleEdit) + "\n\n")

	for i, f := range news.Fields {
		switch {
		case i < m.field:
			b.WriteString(faintStyle.Render(fmt.Sprintf("%s: %s", f.Label, m.editing.Get(f.Key))) + "\n")
		case i == m.field:
			b.WriteString(m.separator() + "\n")
			b.WriteString(fmt.Sprintf("%s: %s\n", f.Label, helpEdit))
			b.WriteString(m.input.View() + "\n")
		}
	}
	return b.String()
}

// Run starts the full-screen editor on store and blocks until it exits.
func Run(store *news.Store) error {
	m, err := New(store)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
