package views

import "fyne.io/fyne/v2"

// Navigator swaps between the application's screens. Showing a screen
// unconditionally replaces whatever is currently visible; there is no
// navigation stack.
type Navigator struct {
	window fyne.Window
}

func NewNavigator(window fyne.Window) *Navigator {
	return &Navigator{window: window}
}

// Show makes content the only visible screen.
func (n *Navigator) Show(content fyne.CanvasObject) {
	n.window.SetContent(content)
}
