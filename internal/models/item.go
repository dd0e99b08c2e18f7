package models

import (
	"github.com/google/uuid"

	"github.com/MDastan2005/Auto-opener/internal/launch"
	"github.com/MDastan2005/Auto-opener/internal/shortcut"
)

// ItemKind distinguishes program shortcuts from website URLs.
type ItemKind int

const (
	KindProgram ItemKind = iota
	KindWeb
)

func (k ItemKind) String() string {
	switch k {
	case KindProgram:
		return "program"
	case KindWeb:
		return "web"
	default:
		return "unknown"
	}
}

// Item is a single launchable unit inside a folder: a desktop program
// reachable through a shortcut artifact, or a website URL. Item selection is
// independent of folder selection.
type Item struct {
	ID       string
	Target   string // executable path or URL
	Artifact string // shortcut file path, program items only
	Kind     ItemKind
	Selected bool

	selectionChanged func(selected bool)
}

// NewProgramItem creates a program item backed by the shortcut artifact at
// artifactPath, launching target.
func NewProgramItem(artifactPath, target string) *Item {
	return &Item{
		ID:       uuid.New().String(),
		Target:   target,
		Artifact: artifactPath,
		Kind:     KindProgram,
	}
}

// NewWebItem creates a web item for an already-normalized URL.
func NewWebItem(url string) *Item {
	return &Item{
		ID:     uuid.New().String(),
		Target: url,
		Kind:   KindWeb,
	}
}

// Name returns the display name: the shortcut stem for program items, the
// URL for web items.
func (it *Item) Name() string {
	if it.Kind == KindProgram {
		return shortcut.Stem(it.Artifact)
	}
	return it.Target
}

// OnSelectionChanged registers the presentation-layer hook fired whenever
// the selection flag flips. The presentation layer observes domain state,
// never the reverse.
func (it *Item) OnSelectionChanged(fn func(selected bool)) {
	it.selectionChanged = fn
}

// ToggleSelection flips the selection flag and notifies the observer.
func (it *Item) ToggleSelection() {
	it.Selected = !it.Selected
	if it.selectionChanged != nil {
		it.selectionChanged(it.Selected)
	}
}

// Launch opens the item through the given opener: programs via the OS
// open/execute action, URLs via the default browser. Failures are returned,
// never fatal.
func (it *Item) Launch(opener launch.Opener) error {
	if it.Kind == KindProgram {
		return opener.OpenPath(it.Target)
	}
	return opener.OpenURL(it.Target)
}
