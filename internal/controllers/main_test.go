package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/MDastan2005/Auto-opener/internal/controllers"
	"github.com/MDastan2005/Auto-opener/internal/logger"
	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/storage"
)

type fakeOpener struct {
	launched []string
	failAll  bool
}

func (f *fakeOpener) open(target string) error {
	if f.failAll {
		return errors.New("spawn refused")
	}
	f.launched = append(f.launched, target)
	return nil
}

func (f *fakeOpener) OpenPath(path string) error { return f.open(path) }
func (f *fakeOpener) OpenURL(url string) error   { return f.open(url) }

func newController(t *testing.T) (*controllers.AppController, *fakeOpener, *storage.Store) {
	t.Helper()
	store, err := storage.NewStore(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	opener := &fakeOpener{}
	ctrl := controllers.NewAppController(store, opener, logger.Nop{})
	if err := ctrl.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ctrl, opener, store
}

func TestCreateFolder_Valid(t *testing.T) {
	ctrl, _, store := newController(t)

	folder := ctrl.CreateFolder("  Morning  ")
	if folder == nil {
		t.Fatal("CreateFolder returned nil for valid name")
	}
	if folder.Name != "Morning" {
		t.Errorf("name = %q, want trimmed Morning", folder.Name)
	}
	if ctrl.Folders().Len() != 1 {
		t.Errorf("folder set size = %d, want 1", ctrl.Folders().Len())
	}

	info, err := os.Stat(store.FolderPath("Morning"))
	if err != nil || !info.IsDir() {
		t.Fatalf("backing directory missing: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(store.FolderPath("Morning"), storage.WebURLsFile))
	if err != nil {
		t.Fatalf("weburls.txt missing: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("weburls.txt not empty: %q", data)
	}
}

func TestCreateFolder_EmptyAndWhitespaceNamesIgnored(t *testing.T) {
	ctrl, _, _ := newController(t)

	if ctrl.CreateFolder("") != nil || ctrl.CreateFolder("   \t ") != nil {
		t.Error("blank names must be ignored")
	}
	if ctrl.Folders().Len() != 0 {
		t.Errorf("folder set size = %d, want 0", ctrl.Folders().Len())
	}
}

func TestCreateFolder_DuplicateNameIgnored(t *testing.T) {
	ctrl, _, _ := newController(t)

	if ctrl.CreateFolder("work") == nil {
		t.Fatal("first create failed")
	}
	if ctrl.CreateFolder("  work ") != nil {
		t.Error("duplicate (post-trim) name must be ignored")
	}
	if ctrl.Folders().Len() != 1 {
		t.Errorf("folder set size = %d, want 1", ctrl.Folders().Len())
	}
}

func TestCreateFolder_UnsafeNamesRejected(t *testing.T) {
	ctrl, _, _ := newController(t)

	for _, name := range []string{"a/b", `a\b`, ".", ".."} {
		if ctrl.CreateFolder(name) != nil {
			t.Errorf("unsafe name %q accepted", name)
		}
	}
	if ctrl.Folders().Len() != 0 {
		t.Errorf("folder set size = %d, want 0", ctrl.Folders().Len())
	}
}

func TestValidFolderName(t *testing.T) {
	valid := []string{"work", "My Stuff", "dev-tools", "день"}
	for _, name := range valid {
		if !controllers.ValidFolderName(name) {
			t.Errorf("ValidFolderName(%q) = false, want true", name)
		}
	}
	invalid := []string{"a/b", `c\d`, ".", "..", "nul\x00"}
	for _, name := range invalid {
		if controllers.ValidFolderName(name) {
			t.Errorf("ValidFolderName(%q) = true, want false", name)
		}
	}
}

func TestDeleteSelectedFolder(t *testing.T) {
	ctrl, _, store := newController(t)

	// No selection: no-op.
	ctrl.DeleteSelectedFolder()

	folder := ctrl.CreateFolder("doomed")
	ctrl.SelectFolder(folder)
	ctrl.DeleteSelectedFolder()

	if ctrl.Folders().Len() != 0 {
		t.Errorf("folder set size = %d, want 0", ctrl.Folders().Len())
	}
	if _, err := os.Stat(store.FolderPath("doomed")); !os.IsNotExist(err) {
		t.Error("backing directory still present")
	}
	if ctrl.SelectedFolder() != nil {
		t.Error("selection survived folder deletion")
	}

	if err := ctrl.Load(); err != nil {
		t.Fatal(err)
	}
	if ctrl.Folders().ByName("doomed") != nil {
		t.Error("deleted folder resurrected by reload")
	}
}

func TestRunSelectedFolder_RunsAllItems(t *testing.T) {
	ctrl, opener, _ := newController(t)

	// No selection: no-op, nothing launched.
	ctrl.RunSelectedFolder()
	if len(opener.launched) != 0 {
		t.Fatal("launch without selection")
	}

	folder := ctrl.CreateFolder("work")
	ctrl.AddURL(folder, "first.example")
	ctrl.AddURL(folder, "second.example")

	ctrl.SelectFolder(folder)
	ctrl.RunSelectedFolder()

	want := []string{"https://first.example", "https://second.example"}
	if !reflect.DeepEqual(opener.launched, want) {
		t.Errorf("launched = %v, want %v", opener.launched, want)
	}
}

func TestAddURL_NormalizesAndPersists(t *testing.T) {
	ctrl, _, store := newController(t)
	folder := ctrl.CreateFolder("sites")

	item := ctrl.AddURL(folder, "example.com")
	if item == nil {
		t.Fatal("AddURL returned nil")
	}
	if item.Target != "https://example.com" {
		t.Errorf("target = %q, want https://example.com", item.Target)
	}

	urls, err := store.ReadURLs("sites")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(urls, []string{"https://example.com"}) {
		t.Errorf("persisted urls = %v", urls)
	}
}

func TestAddURL_BlankInputIgnored(t *testing.T) {
	ctrl, _, _ := newController(t)
	folder := ctrl.CreateFolder("sites")

	if ctrl.AddURL(folder, "   ") != nil {
		t.Error("blank url accepted")
	}
	if len(folder.Items) != 0 {
		t.Errorf("items = %d, want 0", len(folder.Items))
	}
}

func TestAddProgram_WritesArtifact(t *testing.T) {
	ctrl, _, _ := newController(t)
	folder := ctrl.CreateFolder("tools")

	item := ctrl.AddProgram(folder, "/usr/bin/gedit")
	if item == nil {
		t.Fatal("AddProgram returned nil")
	}
	if _, err := os.Stat(item.Artifact); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
	if item.Target != "/usr/bin/gedit" {
		t.Errorf("target = %q", item.Target)
	}
}

func TestRemoveSelectedItems(t *testing.T) {
	ctrl, _, store := newController(t)
	folder := ctrl.CreateFolder("mixed")

	program := ctrl.AddProgram(folder, "/usr/bin/gedit")
	keepURL := ctrl.AddURL(folder, "https://keep.example")
	dropURL := ctrl.AddURL(folder, "https://drop.example")

	program.ToggleSelection()
	dropURL.ToggleSelection()

	ctrl.RemoveSelectedItems(folder)

	if len(folder.Items) != 1 || folder.Items[0] != keepURL {
		t.Errorf("remaining items = %v", folder.Items)
	}
	if _, err := os.Stat(program.Artifact); !os.IsNotExist(err) {
		t.Error("shortcut artifact still on disk")
	}
	urls, err := store.ReadURLs("mixed")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(urls, []string{"https://keep.example"}) {
		t.Errorf("persisted urls = %v", urls)
	}
}

func TestRunSelectedItems_OnlyTicked(t *testing.T) {
	ctrl, opener, _ := newController(t)
	folder := ctrl.CreateFolder("sites")

	ctrl.AddURL(folder, "https://skip.example")
	ticked := ctrl.AddURL(folder, "https://run.example")
	ctrl.ToggleItem(ticked)

	ctrl.RunSelectedItems(folder)

	if !reflect.DeepEqual(opener.launched, []string{"https://run.example"}) {
		t.Errorf("launched = %v, want only the ticked item", opener.launched)
	}
}

func TestLaunchFailureNotifiesWithoutCrashing(t *testing.T) {
	ctrl, opener, _ := newController(t)
	opener.failAll = true

	var notified []string
	ctrl.SetNotifier(func(title, message string) {
		notified = append(notified, title)
	})

	folder := ctrl.CreateFolder("work")
	ctrl.AddURL(folder, "https://example.com")
	ctrl.SelectFolder(folder)
	ctrl.RunSelectedFolder()

	if !reflect.DeepEqual(notified, []string{"Launch failed"}) {
		t.Errorf("notifications = %v, want [Launch failed]", notified)
	}
}

func TestSelectFolder_MovesGlobalSelection(t *testing.T) {
	ctrl, _, _ := newController(t)
	a := ctrl.CreateFolder("a")
	b := ctrl.CreateFolder("b")

	ctrl.SelectFolder(a)
	ctrl.SelectFolder(b)

	if a.Selected {
		t.Error("a still selected")
	}
	if ctrl.SelectedFolder() != b {
		t.Error("b does not hold the selection")
	}
}

func TestLoad_RoundTripFromDisk(t *testing.T) {
	ctrl, _, _ := newController(t)
	folder := ctrl.CreateFolder("persisted")
	ctrl.AddURL(folder, "example.com")
	ctrl.AddProgram(folder, "/usr/bin/tool")

	if err := ctrl.Load(); err != nil {
		t.Fatal(err)
	}

	reloaded := ctrl.Folders().ByName("persisted")
	if reloaded == nil {
		t.Fatal("folder lost on reload")
	}
	if len(reloaded.Items) != 2 {
		t.Fatalf("reloaded %d items, want 2", len(reloaded.Items))
	}

	kinds := map[models.ItemKind]int{}
	for _, it := range reloaded.Items {
		kinds[it.Kind]++
	}
	if kinds[models.KindWeb] != 1 || kinds[models.KindProgram] != 1 {
		t.Errorf("item kinds = %v", kinds)
	}
}
