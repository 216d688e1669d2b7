// Package browser is the interactive record browser: object tabs, record
// cards, and a layout pane with per-field visibility toggles, move
// up/down, and click-to-swap reordering. One App instance is one isolated
// session.
package browser

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/salesmock/crmkit/internal/config"
	"github.com/salesmock/crmkit/pkg/layout"
	"github.com/salesmock/crmkit/pkg/store"
)

type pane string

const (
	paneRecords pane = "records"
	paneLayout  pane = "layout"
)

// layoutRow is one line of the layout pane: a section header or a field.
type layoutRow struct {
	sectionID string
	fieldID   string
	header    bool
}

// App is the bubbletea model for one browsing session.
type App struct {
	cfg     config.Config
	session *store.Session
	objects []string

	object       string
	activeObject int
	pane         pane

	recordCursor int
	layoutCursor int
	rows         []layoutRow
	swapPending  string

	searching   bool
	searchQuery string

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New builds the app over an isolated session.
func New(cfg config.Config, session *store.Session) App {
	if cfg.UI.RecordsPerPage <= 0 {
		cfg.UI.RecordsPerPage = 10
	}
	app := App{
		cfg:     cfg,
		session: session,
		objects: session.Names(),
		pane:    paneRecords,
		status:  "Ready",
		width:   100,
		height:  32,
	}
	app.object = cfg.UI.StartObject
	for idx, name := range app.objects {
		if name == app.object {
			app.activeObject = idx
		}
	}
	if len(app.objects) > 0 && app.object == "" {
		app.object = app.objects[0]
	}
	app.rebuildRows()
	return app
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "tab":
		a.cycleObject(+1)
		return a, nil
	case "shift+tab":
		a.cycleObject(-1)
		return a, nil
	case "l":
		if a.pane == paneRecords {
			a.pane = paneLayout
		} else {
			a.pane = paneRecords
		}
		a.swapPending = ""
		return a, nil
	case "e":
		a.exportLayout()
		return a, nil
	}

	switch a.pane {
	case paneRecords:
		return a.handleRecordsKey(msg)
	case paneLayout:
		return a.handleLayoutKey(msg)
	}
	return a, nil
}

func (a App) handleRecordsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	object, err := a.session.Object(a.object)
	if err != nil {
		a.setError(err)
		return a, nil
	}

	switch msg.String() {
	case "j", "down":
		if a.recordCursor < len(object.Records)-1 {
			a.recordCursor++
		}
	case "k", "up":
		if a.recordCursor > 0 {
			a.recordCursor--
		}
	case "x":
		if err := a.session.Delete(a.object, a.recordCursor); err != nil {
			a.setError(err)
			break
		}
		if a.recordCursor >= len(object.Records) && a.recordCursor > 0 {
			a.recordCursor--
		}
		a.setStatus("Record deleted")
	}
	return a, nil
}

func (a App) handleLayoutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lay, err := a.layout()
	if err != nil {
		a.setError(err)
		return a, nil
	}

	switch msg.String() {
	case "j", "down":
		if a.layoutCursor < len(a.rows)-1 {
			a.layoutCursor++
		}
	case "k", "up":
		if a.layoutCursor > 0 {
			a.layoutCursor--
		}
	case " ", "v":
		row, ok := a.fieldRow()
		if !ok {
			break
		}
		field, err := lay.Field(row.fieldID)
		if err != nil {
			a.setError(err)
			break
		}
		if err := lay.SetVisible(row.fieldID, !field.Visible); err != nil {
			a.setError(err)
			break
		}
		a.setStatus("Visibility toggled")
	case "c":
		row, ok := a.currentRow()
		if !ok {
			break
		}
		section, err := lay.Section(row.sectionID)
		if err != nil {
			a.setError(err)
			break
		}
		if err := lay.SetExpanded(row.sectionID, !section.Expanded); err != nil {
			a.setError(err)
		}
	case "u":
		if row, ok := a.fieldRow(); ok {
			if err := lay.MoveUp(row.fieldID); err != nil {
				a.setError(err)
			}
		}
	case "d":
		if row, ok := a.fieldRow(); ok {
			if err := lay.MoveDown(row.fieldID); err != nil {
				a.setError(err)
			}
		}
	case "/":
		a.searching = true
		a.searchQuery = ""
		a.setStatus("Find field: type a label, enter to jump")
	case "s":
		row, ok := a.fieldRow()
		if !ok {
			break
		}
		switch a.swapPending {
		case "":
			a.swapPending = row.fieldID
			a.setStatus("Swap: pick the second field")
		case row.fieldID:
			a.swapPending = ""
			a.setStatus("Swap cancelled")
		default:
			if err := lay.Swap(a.swapPending, row.fieldID); err != nil {
				a.setError(err)
			} else {
				a.setStatus("Fields swapped")
			}
			a.swapPending = ""
		}
	}
	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.searching = false
		a.setStatus("Search cancelled")
	case tea.KeyBackspace:
		if len(a.searchQuery) > 0 {
			a.searchQuery = a.searchQuery[:len(a.searchQuery)-1]
		}
	case tea.KeyEnter:
		a.searching = false
		a.jumpToField(a.searchQuery)
	case tea.KeyRunes:
		a.searchQuery += string(msg.Runes)
	}
	return a, nil
}

func (a *App) jumpToField(query string) {
	lay, err := a.layout()
	if err != nil {
		a.setError(err)
		return
	}
	field, ok := lay.FindField(query)
	if !ok {
		a.setStatus(fmt.Sprintf("No field matches %q", query))
		return
	}
	for idx, row := range a.rows {
		if row.fieldID == field.ID {
			a.layoutCursor = idx
			a.setStatus("Jumped to " + field.Label)
			return
		}
	}
}

func (a *App) cycleObject(direction int) {
	if len(a.objects) == 0 {
		return
	}
	a.activeObject = (a.activeObject + direction + len(a.objects)) % len(a.objects)
	a.object = a.objects[a.activeObject]
	a.recordCursor = 0
	a.layoutCursor = 0
	a.swapPending = ""
	a.rebuildRows()
}

func (a *App) exportLayout() {
	lay, err := a.layout()
	if err != nil {
		a.setError(err)
		return
	}
	payload, err := lay.Export()
	if err != nil {
		a.setError(err)
		return
	}
	path := a.cfg.Export.Path
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		a.setError(err)
		return
	}
	a.setStatus(fmt.Sprintf("Layout exported to %s", path))
}

func (a *App) layout() (*layout.Layout, error) {
	object, err := a.session.Object(a.object)
	if err != nil {
		return nil, err
	}
	return layout.New(object), nil
}

// rebuildRows flattens the current object's sections into layout pane rows:
// one header per section, then every field in slice order. Display order
// inside the pane follows order values at render time; rows only carry ids.
func (a *App) rebuildRows() {
	a.rows = a.rows[:0]
	object, err := a.session.Object(a.object)
	if err != nil {
		return
	}
	for _, section := range object.Sections {
		a.rows = append(a.rows, layoutRow{sectionID: section.ID, header: true})
		for _, field := range section.Fields {
			a.rows = append(a.rows, layoutRow{sectionID: section.ID, fieldID: field.ID})
		}
	}
	if a.layoutCursor >= len(a.rows) {
		a.layoutCursor = 0
	}
}

func (a *App) currentRow() (layoutRow, bool) {
	if a.layoutCursor < 0 || a.layoutCursor >= len(a.rows) {
		return layoutRow{}, false
	}
	return a.rows[a.layoutCursor], true
}

func (a *App) fieldRow() (layoutRow, bool) {
	row, ok := a.currentRow()
	if !ok || row.header {
		return layoutRow{}, false
	}
	return row, true
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		return
	}
	a.status = err.Error()
	a.statusErr = true
}
