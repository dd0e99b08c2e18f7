package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SelectableLabel is a clickable text row with a selection highlight. It
// renders domain selection state; it never owns it.
type SelectableLabel struct {
	widget.BaseWidget

	text       string
	background *canvas.Rectangle
	label      *widget.Label

	tapHandler       func()
	doubleTapHandler func()
}

func NewSelectableLabel(text string) *SelectableLabel {
	l := &SelectableLabel{
		text:       text,
		background: canvas.NewRectangle(color.Transparent),
		label:      widget.NewLabel(text),
	}
	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer implements fyne.Widget.
func (l *SelectableLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(l.background, l.label))
}

// SetSelected switches the highlight on or off.
func (l *SelectableLabel) SetSelected(selected bool) {
	if selected {
		l.background.FillColor = theme.Color(theme.ColorNameSelection)
	} else {
		l.background.FillColor = color.Transparent
	}
	l.background.Refresh()
}

// SetTapHandler sets the single-tap handler.
func (l *SelectableLabel) SetTapHandler(handler func()) {
	l.tapHandler = handler
}

// SetDoubleTapHandler sets the double-tap handler.
func (l *SelectableLabel) SetDoubleTapHandler(handler func()) {
	l.doubleTapHandler = handler
}

// Tapped implements fyne.Tappable.
func (l *SelectableLabel) Tapped(*fyne.PointEvent) {
	if l.tapHandler != nil {
		l.tapHandler()
	}
}

// DoubleTapped implements fyne.DoubleTappable.
func (l *SelectableLabel) DoubleTapped(*fyne.PointEvent) {
	if l.doubleTapHandler != nil {
		l.doubleTapHandler()
	}
}
