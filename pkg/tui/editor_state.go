package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidgrid/bidgrid-cli/pkg/assembly"
	"github.com/bidgrid/bidgrid-cli/pkg/estimate"
	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
	"github.com/bidgrid/bidgrid-cli/pkg/validation"
)

// Editable columns, cycled with tab while editing.
var editorFields = []string{
	models.FieldQty,
	models.FieldCost,
	models.FieldTextContent,
	models.ItemField(1),
	models.ItemField(2),
	models.ItemField(3),
}

// EditorModel is the estimate grid editor. It owns a core editor over
// the estimate's rows and translates key events into its operations.
type EditorModel struct {
	est    *models.Estimate
	editor *estimate.Editor
	dirty  bool

	catalog  *files.Catalog
	settings *models.Settings

	cursor   int
	fieldIdx int
	editing  bool
	input    textinput.Model

	pickingType bool
	typeCursor  int

	// Current assembly slot used when toggling membership.
	assemblyIdx int

	// Row validation errors, keyed by row ID then field.
	errors map[string]map[string][]string

	confirm     *ConfirmationModel
	showPreview bool
	preview     viewport.Model

	width  int
	height int
	err    error
}

// NewEditorModel loads an estimate and wires the core editor's
// collaborators to the view.
func NewEditorModel(filename string) (*EditorModel, error) {
	est, err := files.ReadEstimate(filename)
	if err != nil {
		return nil, err
	}

	catalog, err := files.LoadCatalog()
	if err != nil {
		catalog = files.DefaultCatalog()
	}
	settings, err := files.ReadSettings()
	if err != nil || settings == nil {
		settings = models.DefaultSettings()
	}

	input := textinput.New()
	input.CharLimit = 120

	m := &EditorModel{
		est:         est,
		catalog:     catalog,
		settings:    settings,
		input:       input,
		confirm:     NewConfirmation(),
		showPreview: settings.UI.ShowPreview,
		preview:     viewport.New(0, 0),
	}

	m.editor = estimate.NewEditor(est.Rows, estimate.Callbacks{
		ReplaceRows: func(rows []models.Row) {
			m.est.Rows = rows
		},
		MarkChanged: func() {
			m.dirty = true
		},
		// Destructive confirmation is handled by the view before the
		// operation is invoked, so the core callback approves.
		Confirm:           func(string) bool { return true },
		LookupProductType: catalog.Lookup,
		AssembliesShifted: func(remap map[int]int) {
			m.est.Assemblies = assembly.RemapInfos(m.est.Assemblies, remap)
		},
	})

	m.validateAll()
	m.updatePreview()
	return m, nil
}

func (m *EditorModel) Init() tea.Cmd {
	return nil
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.preview.Width = width / 3
	m.preview.Height = height - 6
	if m.preview.Height < 3 {
		m.preview.Height = 3
	}
	m.updatePreview()
}

// rows is shorthand for the current collection.
func (m *EditorModel) rows() []models.Row {
	return m.editor.Rows()
}

// validateAll refreshes the error map for every row. Skipped entirely
// while a drag gesture is recalculating.
func (m *EditorModel) validateAll() {
	ctx := validation.Context{Calculating: m.editor.Calculating()}
	m.errors = validation.ValidateAll(ctx, m.rows(), validation.DefaultRules())
}

// validateRow refreshes the error map for a single row on the
// focus-loss boundary.
func (m *EditorModel) validateRow(index int) {
	rows := m.rows()
	if index < 0 || index >= len(rows) {
		return
	}
	ctx := validation.Context{Calculating: m.editor.Calculating()}
	row := rows[index]
	errs := validation.ValidateRow(ctx, row, validation.DefaultRules())
	if m.errors == nil {
		m.errors = make(map[string]map[string][]string)
	}
	if errs == nil {
		delete(m.errors, row.ID)
	} else {
		m.errors[row.ID] = errs
	}
}
