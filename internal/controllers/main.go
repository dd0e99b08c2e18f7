package controllers

import (
	"strings"

	"github.com/MDastan2005/Auto-opener/internal/launch"
	"github.com/MDastan2005/Auto-opener/internal/logger"
	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/storage"
)

// Notifier surfaces a non-fatal problem to the user.
type Notifier func(title, message string)

// AppController owns the folder set and orchestrates every mutation between
// the views, the in-memory model and the persistence layer. All methods run
// on the UI event thread; persistence is written through synchronously.
type AppController struct {
	store   *storage.Store
	opener  launch.Opener
	log     logger.Logger
	folders *models.FolderSet
	notify  Notifier
}

func NewAppController(store *storage.Store, opener launch.Opener, log logger.Logger) *AppController {
	return &AppController{
		store:   store,
		opener:  opener,
		log:     log,
		folders: models.NewFolderSet(),
		notify:  func(string, string) {},
	}
}

// SetNotifier installs the presentation-layer notification hook.
func (c *AppController) SetNotifier(notify Notifier) {
	if notify != nil {
		c.notify = notify
	}
}

// Load replaces the in-memory folder set with the on-disk state. Any
// previous selection is discarded.
func (c *AppController) Load() error {
	folders, err := c.store.LoadAll()
	if err != nil {
		c.report("Load failed", err)
		return err
	}
	c.folders = models.NewFolderSet(folders...)
	c.log.Info("AppController", "folders loaded", map[string]interface{}{
		"count": len(folders),
		"root":  c.store.Root(),
	})
	return nil
}

// Folders returns the folder set for the views to render.
func (c *AppController) Folders() *models.FolderSet {
	return c.folders
}

// SelectFolder makes f the globally selected folder.
func (c *AppController) SelectFolder(f *models.Folder) {
	c.folders.Select(f)
}

// SelectedFolder returns the globally selected folder, or nil.
func (c *AppController) SelectedFolder() *models.Folder {
	return c.folders.Selected()
}

// CreateFolder validates the name and, when valid, creates the in-memory
// folder, its backing directory and an empty URL file. Invalid names
// (empty after trimming, duplicate, or filesystem-unsafe) are silent
// no-ops returning nil.
func (c *AppController) CreateFolder(name string) *models.Folder {
	name = strings.TrimSpace(name)
	if name == "" {
		c.log.Debug("AppController", "empty folder name ignored", nil)
		return nil
	}
	if c.folders.ByName(name) != nil {
		c.log.Debug("AppController", "duplicate folder name ignored", map[string]interface{}{
			"name": name,
		})
		return nil
	}
	if !ValidFolderName(name) {
		c.log.Debug("AppController", "unsafe folder name rejected", map[string]interface{}{
			"name": name,
		})
		return nil
	}

	if err := c.store.CreateFolder(name); err != nil {
		c.report("Create folder failed", err)
		return nil
	}

	folder := models.NewFolder(name)
	c.folders.Add(folder)
	c.log.Info("AppController", "folder created", map[string]interface{}{
		"name": name,
	})
	return folder
}

// ValidFolderName reports whether a trimmed folder name is safe to use as a
// directory name. Names carrying path separators, NUL, or the reserved dot
// names are rejected rather than escaped.
func ValidFolderName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`+"\x00")
}

// DeleteSelectedFolder permanently deletes the globally selected folder and
// its directory tree. No-op when nothing is selected.
func (c *AppController) DeleteSelectedFolder() {
	folder := c.folders.Selected()
	if folder == nil {
		return
	}
	if err := c.store.DeleteFolder(folder.Name); err != nil {
		c.report("Delete folder failed", err)
		return
	}
	c.folders.Remove(folder)
	c.log.Info("AppController", "folder deleted", map[string]interface{}{
		"name": folder.Name,
	})
}

// RunSelectedFolder launches every item of the globally selected folder.
// No-op when nothing is selected.
func (c *AppController) RunSelectedFolder() {
	folder := c.folders.Selected()
	if folder == nil {
		return
	}
	if err := folder.RunAll(c.opener); err != nil {
		c.report("Launch failed", err)
	}
}

// AddProgram materializes a shortcut artifact for exePath in the folder's
// directory and adds the program item.
func (c *AppController) AddProgram(folder *models.Folder, exePath string) *models.Item {
	artifact, err := c.store.WriteShortcut(folder.Name, exePath)
	if err != nil {
		c.report("Add program failed", err)
		return nil
	}
	item := models.NewProgramItem(artifact, exePath)
	folder.AddItem(item)
	c.log.Info("AppController", "program added", map[string]interface{}{
		"folder": folder.Name,
		"target": exePath,
	})
	return item
}

// AddURL normalizes raw and appends it to the folder's URL file. Blank
// input is a silent no-op returning nil.
func (c *AppController) AddURL(folder *models.Folder, raw string) *models.Item {
	url := storage.NormalizeURL(raw)
	if url == "" {
		c.log.Debug("AppController", "empty url ignored", nil)
		return nil
	}
	if err := c.store.AppendURL(folder.Name, url); err != nil {
		c.report("Add website failed", err)
		return nil
	}
	item := models.NewWebItem(url)
	folder.AddItem(item)
	c.log.Info("AppController", "url added", map[string]interface{}{
		"folder": folder.Name,
		"url":    url,
	})
	return item
}

// ToggleItem flips an item's selection flag.
func (c *AppController) ToggleItem(item *models.Item) {
	item.ToggleSelection()
}

// RemoveSelectedItems removes every selected item from the folder: shortcut
// artifacts are deleted individually, web URLs are rewritten in one pass.
func (c *AppController) RemoveSelectedItems(folder *models.Folder) {
	var removeURLs []string
	for _, item := range folder.SelectedItems() {
		if item.Kind == models.KindProgram {
			if err := c.store.RemoveShortcut(item.Artifact); err != nil {
				c.report("Remove program failed", err)
				continue
			}
		} else {
			removeURLs = append(removeURLs, item.Target)
		}
		folder.RemoveItem(item)
	}

	if len(removeURLs) > 0 {
		if err := c.store.RemoveURLs(folder.Name, removeURLs); err != nil {
			c.report("Remove websites failed", err)
		}
	}
}

// RunSelectedItems launches only the items the user ticked inside the
// folder, in stored order.
func (c *AppController) RunSelectedItems(folder *models.Folder) {
	if err := folder.RunSelected(c.opener); err != nil {
		c.report("Launch failed", err)
	}
}

func (c *AppController) report(title string, err error) {
	c.log.Error("AppController", err, map[string]interface{}{
		"action": title,
	})
	c.notify(title, err.Error())
}
