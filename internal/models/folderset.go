package models

// FolderSet is the ordered collection of all folders, owned by the
// application controller. It enforces the single-selection invariant: at
// most one folder is selected at any time, and selecting a folder first
// deselects whichever folder currently holds the selection.
type FolderSet struct {
	folders []*Folder
}

func NewFolderSet(folders ...*Folder) *FolderSet {
	return &FolderSet{folders: folders}
}

// All returns the folders in order. The returned slice must not be mutated.
func (s *FolderSet) All() []*Folder {
	return s.folders
}

func (s *FolderSet) Len() int {
	return len(s.folders)
}

// ByName returns the folder with the given name, or nil.
func (s *FolderSet) ByName(name string) *Folder {
	for _, f := range s.folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Add appends a folder to the set.
func (s *FolderSet) Add(f *Folder) {
	s.folders = append(s.folders, f)
}

// Remove deselects and removes a folder. Returns false when the folder is
// not a member.
func (s *FolderSet) Remove(f *Folder) bool {
	for i, existing := range s.folders {
		if existing == f {
			f.setSelected(false)
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			return true
		}
	}
	return false
}

// Select makes f the globally selected folder, deselecting the current
// holder first.
func (s *FolderSet) Select(f *Folder) {
	if current := s.Selected(); current != nil && current != f {
		current.setSelected(false)
	}
	f.setSelected(true)
}

// Deselect clears the global selection, if any.
func (s *FolderSet) Deselect() {
	if current := s.Selected(); current != nil {
		current.setSelected(false)
	}
}

// Selected returns the folder holding the global selection, or nil.
func (s *FolderSet) Selected() *Folder {
	for _, f := range s.folders {
		if f.Selected {
			return f
		}
	}
	return nil
}
