package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the current status message and folder/item counts.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countsLabel *widget.Label
}

// NewStatusBar creates a new status bar component.
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countsLabel = widget.NewLabel("No folders")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.countsLabel,
	)
}

// SetStatus updates the status message. Safe to call from any goroutine.
func (sb *StatusBar) SetStatus(status string) {
	fyne.Do(func() {
		sb.statusLabel.SetText(status)
	})
}

// SetCounts updates the folder/item counts display.
func (sb *StatusBar) SetCounts(folders, items int) {
	fyne.Do(func() {
		if folders == 0 {
			sb.countsLabel.SetText("No folders")
			return
		}
		sb.countsLabel.SetText(fmt.Sprintf("%d folders, %d items", folders, items))
	})
}

// Reset restores the initial state.
func (sb *StatusBar) Reset() {
	fyne.Do(func() {
		sb.statusLabel.SetText("Ready")
		sb.countsLabel.SetText("No folders")
	})
}

// GetContainer returns the status bar container.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
