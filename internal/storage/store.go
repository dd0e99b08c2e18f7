// Package storage is the persistence adapter between the in-memory folder
// model and the on-disk layout:
//
//	<data_root>/
//	  <FolderName>/
//	    weburls.txt           newline-delimited URLs, blank lines ignored
//	    <program-stem>.desktop  one shortcut artifact per program item
//
// Every mutation is written through immediately; the tree is the sole source
// of truth at startup.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MDastan2005/Auto-opener/internal/models"
	"github.com/MDastan2005/Auto-opener/internal/shortcut"
)

// WebURLsFile is the fixed per-folder file holding every web item.
const WebURLsFile = "weburls.txt"

// Store reads and writes folder data under a single root directory.
type Store struct {
	root string
}

// NewStore opens a store rooted at root, creating the directory if absent.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create data root %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// FolderPath returns the backing directory for a folder name.
func (s *Store) FolderPath(name string) string {
	return filepath.Join(s.root, name)
}

// LoadAll reconstructs the full folder set from the immediate
// subdirectories of the root. Inside each folder directory the file named
// weburls.txt is parsed as the URL list; every other file becomes one
// program item.
func (s *Store) LoadAll() ([]*models.Folder, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read data root %s: %w", s.root, err)
	}

	var folders []*models.Folder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder, err := s.loadFolder(entry.Name())
		if err != nil {
			return nil, err
		}
		folders = append(folders, folder)
	}
	return folders, nil
}

func (s *Store) loadFolder(name string) (*models.Folder, error) {
	dir := s.FolderPath(name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", dir, err)
	}

	var items []*models.Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		if entry.Name() == WebURLsFile {
			urls, err := readURLs(path)
			if err != nil {
				return nil, err
			}
			for _, url := range urls {
				items = append(items, models.NewWebItem(url))
			}
			continue
		}

		target, err := shortcut.ReadTarget(path)
		if err != nil {
			// Unreadable artifacts still show up; the artifact itself
			// becomes the launch target.
			target = path
		}
		items = append(items, models.NewProgramItem(path, target))
	}

	return models.NewFolder(name, items...), nil
}

// CreateFolder creates the backing directory and an empty weburls.txt.
// An already-existing directory keeps its content.
func (s *Store) CreateFolder(name string) error {
	dir := s.FolderPath(name)
	if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("create folder %s: %w", dir, err)
	}

	urlsPath := filepath.Join(dir, WebURLsFile)
	if _, err := os.Stat(urlsPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(urlsPath, nil, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", urlsPath, err)
		}
	}
	return nil
}

// DeleteFolder recursively removes a folder's directory tree. Irreversible.
func (s *Store) DeleteFolder(name string) error {
	if err := os.RemoveAll(s.FolderPath(name)); err != nil {
		return fmt.Errorf("delete folder %s: %w", name, err)
	}
	return nil
}

// NormalizeURL trims raw and prefixes https:// when no URL scheme is
// present. Returns the empty string for blank input.
func NormalizeURL(raw string) string {
	url := strings.TrimSpace(raw)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

// AppendURL appends an already-normalized URL to the folder's weburls.txt.
func (s *Store) AppendURL(folder, url string) error {
	path := filepath.Join(s.FolderPath(folder), WebURLsFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(url + "\n"); err != nil {
		return fmt.Errorf("append url to %s: %w", path, err)
	}
	return nil
}

// RemoveURLs rewrites the folder's weburls.txt excluding the given URLs.
// The remaining URLs keep their relative order; blank lines are dropped.
func (s *Store) RemoveURLs(folder string, remove []string) error {
	path := filepath.Join(s.FolderPath(folder), WebURLsFile)
	urls, err := readURLs(path)
	if err != nil {
		return err
	}

	removeSet := make(map[string]struct{}, len(remove))
	for _, url := range remove {
		removeSet[url] = struct{}{}
	}

	var builder strings.Builder
	for _, url := range urls {
		if _, drop := removeSet[url]; drop {
			continue
		}
		builder.WriteString(url)
		builder.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}

// ReadURLs returns the folder's URL list: trimmed, blank lines excluded.
func (s *Store) ReadURLs(folder string) ([]string, error) {
	return readURLs(filepath.Join(s.FolderPath(folder), WebURLsFile))
}

// WriteShortcut materializes a shortcut artifact for exePath inside the
// folder's directory and returns the artifact path.
func (s *Store) WriteShortcut(folder, exePath string) (string, error) {
	return shortcut.Write(s.FolderPath(folder), exePath)
}

// RemoveShortcut deletes a program item's shortcut artifact.
func (s *Store) RemoveShortcut(artifactPath string) error {
	if err := os.Remove(artifactPath); err != nil {
		return fmt.Errorf("remove shortcut %s: %w", artifactPath, err)
	}
	return nil
}

func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url == "" {
			continue
		}
		urls = append(urls, url)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return urls, nil
}
