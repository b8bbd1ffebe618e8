package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type sessionState int

const (
	estimateListView sessionState = iota
	estimateEditorView
)

type App struct {
	state     sessionState
	list      *EstimateListModel
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
}

func NewApp() *App {
	return &App{
		state: estimateListView,
		list:  NewEstimateListModel(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.list != nil {
			a.list.SetSize(msg.Width, msg.Height)
		}
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case estimateListView:
			a.state = estimateListView
			if a.list == nil {
				a.list = NewEstimateListModel()
			} else {
				// Reload estimates when returning to the list
				a.list.loadEstimates()
			}
			a.statusMsg = msg.status
			return a, a.list.Init()
		case estimateEditorView:
			a.state = estimateEditorView
			editor, err := NewEditorModel(msg.estimate)
			if err != nil {
				a.state = estimateListView
				a.statusMsg = err.Error()
				return a, nil
			}
			a.editor = editor
			a.editor.SetSize(a.width, a.height)
			a.statusMsg = msg.status
			return a, a.editor.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case estimateListView:
		var m tea.Model
		m, cmd = a.list.Update(msg)
		if lm, ok := m.(*EstimateListModel); ok {
			a.list = lm
		}
	case estimateEditorView:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		if em, ok := m.(*EditorModel); ok {
			a.editor = em
		}
	}
	return a, cmd
}

func (a *App) View() string {
	var body string
	switch a.state {
	case estimateListView:
		body = a.list.View()
	case estimateEditorView:
		body = a.editor.View()
	}
	if a.statusMsg != "" {
		body += "\n" + StatusStyle.Render(a.statusMsg)
	}
	return body
}
