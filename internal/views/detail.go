package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/views/components"
)

// DetailView is the single-folder screen: one clickable row per item with a
// per-item selection highlight, plus controls to add programs and websites
// and to remove or run the ticked items.
type DetailView struct {
	container        *fyne.Container
	titleLabel       *widget.Label
	itemBox          *fyne.Container
	returnButton     *widget.Button
	addProgramButton *widget.Button
	urlEntry         *widget.Entry
	addURLButton     *widget.Button
	removeButton     *widget.Button
	runButton        *widget.Button

	folder *models.Folder

	returnHandler     func()
	addProgramHandler func()
	addURLHandler     func(raw string)
	toggleHandler     func(*models.Item)
	removeHandler     func()
	runHandler        func()
}

// NewDetailView creates the folder detail screen.
func NewDetailView() *DetailView {
	view := &DetailView{}
	view.createComponents()
	view.buildLayout()
	view.setupEventHandlers()
	return view
}

func (v *DetailView) createComponents() {
	v.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.itemBox = container.NewVBox()

	v.returnButton = widget.NewButton("Return back", nil)

	v.addProgramButton = widget.NewButton("Add new program", nil)

	v.urlEntry = widget.NewEntry()
	v.urlEntry.SetPlaceHolder("Enter website url")
	v.addURLButton = widget.NewButton("Add website", nil)

	v.removeButton = widget.NewButton("Remove selected", nil)
	v.removeButton.Importance = widget.DangerImportance
	v.runButton = widget.NewButton("Run selected", nil)
	v.runButton.Importance = widget.HighImportance
}

func (v *DetailView) buildLayout() {
	header := container.NewBorder(nil, nil, v.returnButton, nil, v.titleLabel)

	urlRow := container.NewGridWithColumns(2, v.urlEntry, v.addURLButton)
	actionRow := container.NewGridWithColumns(2, v.removeButton, v.runButton)

	bottom := container.NewVBox(
		v.addProgramButton,
		urlRow,
		widget.NewSeparator(),
		actionRow,
	)

	v.container = container.NewBorder(
		header,
		bottom,
		nil, nil,
		container.NewVScroll(v.itemBox),
	)
}

func (v *DetailView) setupEventHandlers() {
	v.returnButton.OnTapped = func() {
		if v.returnHandler != nil {
			v.returnHandler()
		}
	}
	v.addProgramButton.OnTapped = func() {
		if v.addProgramHandler != nil {
			v.addProgramHandler()
		}
	}

	addURL := func() {
		if v.addURLHandler != nil {
			v.addURLHandler(v.urlEntry.Text)
			v.urlEntry.SetText("")
		}
	}
	v.addURLButton.OnTapped = addURL
	v.urlEntry.OnSubmitted = func(string) { addURL() }

	v.removeButton.OnTapped = func() {
		if v.removeHandler != nil {
			v.removeHandler()
		}
	}
	v.runButton.OnTapped = func() {
		if v.runHandler != nil {
			v.runHandler()
		}
	}
}

// SetFolder binds the view to a folder and rebuilds the item rows.
func (v *DetailView) SetFolder(folder *models.Folder) {
	v.folder = folder
	v.titleLabel.SetText(folder.Name)
	v.RefreshItems()
}

// Folder returns the folder currently shown, or nil.
func (v *DetailView) Folder() *models.Folder {
	return v.folder
}

// RefreshItems rebuilds the item rows from the bound folder. Must be called
// on the UI thread.
func (v *DetailView) RefreshItems() {
	v.itemBox.Objects = nil
	if v.folder == nil {
		v.itemBox.Refresh()
		return
	}

	for _, item := range v.folder.Items {
		item := item
		row := components.NewSelectableLabel(item.Name())
		row.SetSelected(item.Selected)

		item.OnSelectionChanged(func(selected bool) {
			row.SetSelected(selected)
		})
		row.SetTapHandler(func() {
			if v.toggleHandler != nil {
				v.toggleHandler(item)
			}
		})

		v.itemBox.Add(row)
	}
	v.itemBox.Refresh()
}

// Event handler setters - called by the application wiring.

func (v *DetailView) SetReturnHandler(handler func()) {
	v.returnHandler = handler
}

func (v *DetailView) SetAddProgramHandler(handler func()) {
	v.addProgramHandler = handler
}

func (v *DetailView) SetAddURLHandler(handler func(raw string)) {
	v.addURLHandler = handler
}

func (v *DetailView) SetToggleHandler(handler func(*models.Item)) {
	v.toggleHandler = handler
}

func (v *DetailView) SetRemoveHandler(handler func()) {
	v.removeHandler = handler
}

func (v *DetailView) SetRunHandler(handler func()) {
	v.runHandler = handler
}

// GetContainer returns the screen's root container.
func (v *DetailView) GetContainer() *fyne.Container {
	return v.container
}
