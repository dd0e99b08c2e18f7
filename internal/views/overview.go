package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/views/components"
)

// OverviewView is the folder list screen: one clickable row per folder,
// controls to create, delete and run the selected folder. Clicks are
// forwarded to the controller through handlers; the view renders whatever
// the domain model says.
type OverviewView struct {
	container     *fyne.Container
	folderBox     *fyne.Container
	nameEntry     *widget.Entry
	createButton  *widget.Button
	deleteButton  *widget.Button
	runButton     *widget.Button
	refreshButton *widget.Button
	statusBar     *components.StatusBar

	createHandler  func(name string)
	deleteHandler  func()
	runHandler     func()
	refreshHandler func()
	selectHandler  func(*models.Folder)
	openHandler    func(*models.Folder)
}

// NewOverviewView creates the overview screen.
func NewOverviewView() *OverviewView {
	view := &OverviewView{}
	view.createComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

func (v *OverviewView) createComponents() {
	v.folderBox = container.NewVBox()

	v.nameEntry = widget.NewEntry()
	v.nameEntry.SetPlaceHolder("Folder Name")

	v.createButton = widget.NewButton("Create Folder", nil)
	v.createButton.Importance = widget.HighImportance

	v.deleteButton = widget.NewButton("Delete Folder", nil)
	v.deleteButton.Importance = widget.DangerImportance

	v.runButton = widget.NewButton("Run Folder", nil)

	v.refreshButton = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), nil)

	v.statusBar = components.NewStatusBar()
}

func (v *OverviewView) buildLayout() {
	header := container.NewBorder(
		nil, nil, nil,
		v.refreshButton,
		widget.NewLabelWithStyle("Folders", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	)

	createRow := container.NewGridWithColumns(2, v.nameEntry, v.createButton)
	actionRow := container.NewGridWithColumns(2, v.deleteButton, v.runButton)

	bottom := container.NewVBox(
		createRow,
		actionRow,
		widget.NewSeparator(),
		v.statusBar.GetContainer(),
	)

	v.container = container.NewBorder(
		header,
		bottom,
		nil, nil,
		container.NewVScroll(v.folderBox),
	)
}

func (v *OverviewView) setupEventHandlers() {
	create := func() {
		if v.createHandler != nil {
			v.createHandler(v.nameEntry.Text)
			v.nameEntry.SetText("")
		}
	}
	v.createButton.OnTapped = create
	v.nameEntry.OnSubmitted = func(string) { create() }

	v.deleteButton.OnTapped = func() {
		if v.deleteHandler != nil {
			v.deleteHandler()
		}
	}
	v.runButton.OnTapped = func() {
		if v.runHandler != nil {
			v.runHandler()
		}
	}
	v.refreshButton.OnTapped = func() {
		if v.refreshHandler != nil {
			v.refreshHandler()
		}
	}
}

// SetFolders rebuilds the folder rows. Must be called on the UI thread.
func (v *OverviewView) SetFolders(folders []*models.Folder) {
	v.folderBox.Objects = nil

	for _, folder := range folders {
		folder := folder
		row := components.NewSelectableLabel(folder.Name)
		row.SetSelected(folder.Selected)

		folder.OnSelectionChanged(func(selected bool) {
			row.SetSelected(selected)
		})
		row.SetTapHandler(func() {
			if v.selectHandler != nil {
				v.selectHandler(folder)
			}
		})
		row.SetDoubleTapHandler(func() {
			if v.openHandler != nil {
				v.openHandler(folder)
			}
		})

		v.folderBox.Add(row)
	}
	v.folderBox.Refresh()
}

// SetStatus updates the status bar message.
func (v *OverviewView) SetStatus(status string) {
	v.statusBar.SetStatus(status)
}

// SetCounts updates the folder/item counts display.
func (v *OverviewView) SetCounts(folders, items int) {
	v.statusBar.SetCounts(folders, items)
}

// Event handler setters - called by the application wiring.

func (v *OverviewView) SetCreateHandler(handler func(name string)) {
	v.createHandler = handler
}

func (v *OverviewView) SetDeleteHandler(handler func()) {
	v.deleteHandler = handler
}

func (v *OverviewView) SetRunHandler(handler func()) {
	v.runHandler = handler
}

func (v *OverviewView) SetRefreshHandler(handler func()) {
	v.refreshHandler = handler
}

func (v *OverviewView) SetSelectHandler(handler func(*models.Folder)) {
	v.selectHandler = handler
}

func (v *OverviewView) SetOpenHandler(handler func(*models.Folder)) {
	v.openHandler = handler
}

// GetContainer returns the screen's root container.
func (v *OverviewView) GetContainer() *fyne.Container {
	return v.container
}
