package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bidgrid/bidgrid-cli/pkg/files"
	"github.com/bidgrid/bidgrid-cli/pkg/models"
)

func setupEstimate(t *testing.T, est *models.Estimate) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)

	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}
	if err := files.WriteEstimate(est); err != nil {
		t.Fatalf("WriteEstimate failed: %v", err)
	}
	return est.Path
}

func testEstimate() *models.Estimate {
	a := models.Row{ID: "a", IsMainRow: true, ProductTypeID: "cabinet", ProductTypeName: "Cabinet"}
	a1 := models.Row{ID: "a1", ParentProductID: "a", TextContent: "note"}
	b := models.Row{ID: "b", IsMainRow: true, ProductTypeID: "labor", ProductTypeName: "Labor"}
	return &models.Estimate{Name: "Test", Rows: []models.Row{a, a1, b}}
}

func TestNewEditorModel(t *testing.T) {
	path := setupEstimate(t, testEstimate())

	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	if len(m.rows()) != 3 {
		t.Errorf("loaded %d rows, want 3", len(m.rows()))
	}
	if m.dirty {
		t.Error("freshly loaded editor is dirty")
	}
}

func TestNewEditorModelMissingFile(t *testing.T) {
	setupEstimate(t, testEstimate())

	if _, err := NewEditorModel("missing.yaml"); err == nil {
		t.Error("loading a missing estimate succeeded")
	}
}

func TestEditorMoveGroupDown(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("J"))

	got := m.rows()
	if got[0].ID != "b" || got[1].ID != "a" || got[2].ID != "a1" {
		t.Errorf("rows after move = %s %s %s, want b a a1", got[0].ID, got[1].ID, got[2].ID)
	}
	// The cursor follows the moved group.
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	if !m.dirty {
		t.Error("move did not mark the estimate dirty")
	}
}

func TestEditorMoveGroupUpFromChild(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	// Cursor on b, move its group above a.
	m.cursor = 2
	m.Update(keyMsg("K"))

	got := m.rows()
	if got[0].ID != "b" {
		t.Errorf("first row = %s, want b", got[0].ID)
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestEditorMoveGroupAtEdge(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	// The first group cannot move further up.
	m.Update(keyMsg("K"))
	if m.rows()[0].ID != "a" || m.dirty {
		t.Error("edge move changed the collection")
	}
}

func TestEditorCommitFieldThroughInput(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	// fieldIdx 0 is the quantity column.
	m.Update(keyMsg("e"))
	if !m.editing {
		t.Fatal("editor not in editing mode")
	}
	m.input.SetValue("4")
	m.Update(keyMsg("enter"))

	if m.editing {
		t.Error("still editing after commit")
	}
	if got := m.rows()[0].Data.Quantity; got != "4" {
		t.Errorf("quantity = %q, want 4", got)
	}
}

func TestEditorCommitValidatesOnBlur(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("e"))
	m.input.SetValue("zero")
	m.Update(keyMsg("enter"))

	if len(m.errors["a"][models.FieldQuantity]) == 0 {
		t.Errorf("bad quantity not flagged: %v", m.errors)
	}

	// Correcting the value clears the error.
	m.Update(keyMsg("e"))
	m.input.SetValue("2")
	m.Update(keyMsg("enter"))

	if _, ok := m.errors["a"]; ok {
		t.Errorf("error not cleared after correction: %v", m.errors)
	}
}

func TestEditorInsertRow(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	// Inserting from a's child lands after the group, before b.
	m.cursor = 1
	m.Update(keyMsg("i"))

	got := m.rows()
	if len(got) != 4 {
		t.Fatalf("got %d rows, want 4", len(got))
	}
	if got[2].ProductTypeID != "" || !got[2].IsMainRow {
		t.Errorf("inserted row is not a placeholder: %+v", got[2])
	}
	if got[3].ID != "b" {
		t.Errorf("insert landed in the wrong place: last row %s", got[3].ID)
	}
}

func TestEditorDeleteConfirms(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("d"))
	if !m.confirm.Active() {
		t.Fatal("delete did not prompt")
	}
	m.Update(keyMsg("y"))

	got := m.rows()
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("rows after delete = %d, want only b", len(got))
	}
}

func TestEditorDeleteDeclined(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("d"))
	m.Update(keyMsg("n"))

	if len(m.rows()) != 3 {
		t.Errorf("declined delete removed rows: %d left", len(m.rows()))
	}
}

func TestEditorSaveFlow(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("J"))
	if !m.dirty {
		t.Fatal("move did not mark the estimate dirty")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s produced no command")
	}

	// The command only writes the file and reports back; the dirty
	// flag is cleared when the message reaches Update.
	result := cmd()
	if !m.dirty {
		t.Fatal("command mutated the model")
	}

	_, cmd = m.Update(result)
	if m.dirty {
		t.Error("editor still dirty after save")
	}
	if cmd == nil {
		t.Fatal("save result produced no status")
	}
	if status, ok := cmd().(StatusMsg); !ok || !strings.Contains(string(status), "Saved") {
		t.Errorf("save status = %v", cmd())
	}

	est, err := files.ReadEstimate(path)
	if err != nil {
		t.Fatalf("ReadEstimate failed: %v", err)
	}
	if est.Rows[0].ID != "b" {
		t.Errorf("saved first row = %s, want b", est.Rows[0].ID)
	}
}

func TestEditorToggleAssembly(t *testing.T) {
	path := setupEstimate(t, testEstimate())
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("a"))
	if g := m.rows()[0].Data.AssemblyGroup; g == nil || *g != 0 {
		t.Error("row not assigned to assembly 0")
	}

	// Toggling again removes the membership.
	m.Update(keyMsg("a"))
	if m.rows()[0].Data.AssemblyGroup != nil {
		t.Error("membership not cleared on second toggle")
	}
}

func TestEditorTypePicker(t *testing.T) {
	est := &models.Estimate{Name: "Test", Rows: []models.Row{models.NewPlaceholderRow()}}
	path := setupEstimate(t, est)
	m, err := NewEditorModel(path)
	if err != nil {
		t.Fatalf("NewEditorModel failed: %v", err)
	}

	m.Update(keyMsg("t"))
	if !m.pickingType {
		t.Fatal("type picker not open")
	}
	m.Update(keyMsg("enter"))

	row := m.rows()[0]
	if row.ProductTypeID == "" {
		t.Error("row not classified after picking a type")
	}
	if row.ProductTypeID != m.catalog.Types[0].ID {
		t.Errorf("picked type = %s, want %s", row.ProductTypeID, m.catalog.Types[0].ID)
	}
}
