package state

import (
	fsutil "github.com/kk-code-lab/twopane/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// EntryList mirrors fs.EntryList.
type EntryList = fsutil.EntryList

// listDirectoryFn mirrors fs.List but is overridable in tests.
var listDirectoryFn = fsutil.List

// AppState is the single source of truth for navigation.
type AppState struct {
	// Navigation
	CurrentPath   string
	SelectedIndex int
	ShowHidden    bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Transient notice shown on the last row until dismissed
	Notice string
}

// NewAppState creates the startup state for path.
func NewAppState(path string, showHidden bool) *AppState {
	return &AppState{
		CurrentPath: path,
		ShowHidden:  showHidden,
	}
}

// Entries lists the current directory. The result is never cached: every
// call enumerates the filesystem again.
func (s *AppState) Entries() EntryList {
	return listDirectoryFn(s.CurrentPath, s.ShowHidden)
}

// Selection returns SelectedIndex clamped to a listing of count entries.
func (s *AppState) Selection(count int) int {
	return clampSelection(s.SelectedIndex, count)
}

// SelectedEntry returns the entry under the cursor in entries, or nil when
// the listing is empty.
func (s *AppState) SelectedEntry(entries EntryList) *FileEntry {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[s.Selection(len(entries))]
	return &entry
}

func clampSelection(idx, count int) int {
	if count <= 0 || idx < 0 {
		return 0
	}
	if idx > count-1 {
		return count - 1
	}
	return idx
}
