package models

import (
	"errors"

	"github.com/MDastan2005/Auto-opener/internal/launch"
)

// Folder is a named, ordered group of launchable items. A folder owns its
// items exclusively; folder-level selection is managed by the FolderSet.
type Folder struct {
	Name     string
	Items    []*Item
	Selected bool

	selectionChanged func(selected bool)
}

func NewFolder(name string, items ...*Item) *Folder {
	return &Folder{
		Name:  name,
		Items: items,
	}
}

// AddItem appends an item. Duplicates are not rejected.
func (f *Folder) AddItem(it *Item) {
	f.Items = append(f.Items, it)
}

// RemoveItem removes an item by identity. Returns false when the item is
// not in the folder.
func (f *Folder) RemoveItem(it *Item) bool {
	for i, existing := range f.Items {
		if existing == it {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SelectedItems returns the items currently flagged selected, in stored
// order.
func (f *Folder) SelectedItems() []*Item {
	var selected []*Item
	for _, it := range f.Items {
		if it.Selected {
			selected = append(selected, it)
		}
	}
	return selected
}

// RunAll launches every item sequentially in insertion order. A failed
// launch does not stop the remaining items; all failures are joined into
// the returned error.
func (f *Folder) RunAll(opener launch.Opener) error {
	var errs []error
	for _, it := range f.Items {
		if err := it.Launch(opener); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RunSelected launches only the items flagged selected, in stored order.
func (f *Folder) RunSelected(opener launch.Opener) error {
	var errs []error
	for _, it := range f.Items {
		if !it.Selected {
			continue
		}
		if err := it.Launch(opener); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnSelectionChanged registers the presentation-layer hook fired whenever
// the folder's selection flag flips.
func (f *Folder) OnSelectionChanged(fn func(selected bool)) {
	f.selectionChanged = fn
}

func (f *Folder) setSelected(selected bool) {
	if f.Selected == selected {
		return
	}
	f.Selected = selected
	if f.selectionChanged != nil {
		f.selectionChanged(selected)
	}
}
