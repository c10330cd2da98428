package state

import (
	"fmt"
	"os"
	"path/filepath"

	fsutil "github.com/kk-code-lab/twopane/internal/fs"
)

var (
	statPathFn  = os.Stat
	readNamesFn = fsutil.ReadNames
)

// NavigationError reports a directory activation that could not be carried
// out. The state is left untouched when it is returned.
type NavigationError struct {
	Path       string
	NotDir     bool
	Unreadable bool
	Err        error
}

func (e *NavigationError) Error() string {
	if e.NotDir {
		return fmt.Sprintf("cannot enter %s: not a directory", e.Path)
	}
	return fmt.Sprintf("cannot enter %s: %v", e.Path, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Notice is the short message shown to the user for this failure.
func (e *NavigationError) Notice() string {
	switch {
	case e.NotDir:
		return "❌ Not a directory"
	case e.Unreadable:
		return "❌ Cannot open directory"
	default:
		return "❌ Directory not found"
	}
}

// StateReducer applies actions to an AppState.
type StateReducer struct{}

// NewStateReducer creates a reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state. A non-nil error never leaves the state
// partially updated.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		// Bounds come from a fresh listing so changes on disk between
		// keypresses cannot push the cursor out of range.
		count := len(state.Entries())
		idx := state.Selection(count)
		if idx < count-1 {
			idx++
		}
		state.SelectedIndex = idx
		return state, nil

	case NavigateUpAction:
		count := len(state.Entries())
		idx := state.Selection(count)
		if idx > 0 {
			idx--
		}
		state.SelectedIndex = idx
		return state, nil

	case ActivateAction:
		entry := state.SelectedEntry(state.Entries())
		if entry == nil {
			return state, nil
		}

		switch {
		case entry.IsParent():
			state.CurrentPath = filepath.Dir(state.CurrentPath)
			state.SelectedIndex = 0
		case entry.IsDir():
			target, err := resolveDirectory(state.CurrentPath, entry.Name)
			if err != nil {
				return state, err
			}
			state.CurrentPath = target
			state.SelectedIndex = 0
		}
		return state, nil

	// ===== VIEW =====

	case ToggleHiddenFilesAction:
		state.ShowHidden = !state.ShowHidden
		state.SelectedIndex = 0
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return state, nil

	case DismissNoticeAction:
		state.Notice = ""
		return state, nil
	}

	return state, nil
}

// resolveDirectory turns name inside dir into an absolute directory path.
func resolveDirectory(dir, name string) (string, error) {
	joined := filepath.Join(dir, name)
	target, err := filepath.Abs(joined)
	if err != nil {
		return "", &NavigationError{Path: joined, Err: err}
	}

	info, err := statPathFn(target)
	if err != nil {
		return "", &NavigationError{Path: target, Err: err}
	}
	if !info.IsDir() {
		return "", &NavigationError{Path: target, NotDir: true}
	}
	// an unlistable directory would leave no parent entry to climb back with
	if _, err := readNamesFn(target); err != nil {
		return "", &NavigationError{Path: target, Unreadable: true, Err: err}
	}
	return target, nil
}
