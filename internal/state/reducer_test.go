package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fsutil "github.com/kk-code-lab/twopane/internal/fs"
)

func setupScenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "docs"), 0o755); err != nil {
		t.Fatalf("failed to create docs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".secret"), []byte("s"), 0o644); err != nil {
		t.Fatalf("failed to create .secret: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("failed to create a.txt: %v", err)
	}
	return dir
}

func stubListing(t *testing.T, entries EntryList) {
	t.Helper()
	orig := listDirectoryFn
	listDirectoryFn = func(string, bool) EntryList { return entries }
	t.Cleanup(func() { listDirectoryFn = orig })
}

func indexOf(entries EntryList, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// ===== NAVIGATION TESTS =====

func TestNavigateDown(t *testing.T) {
	stubListing(t, EntryList{
		fsutil.NewEntry("file1.txt", fsutil.KindFile),
		fsutil.NewEntry("file2.txt", fsutil.KindFile),
		fsutil.NewEntry("file3.txt", fsutil.KindFile),
	})
	state := NewAppState("/test", false)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}

	if state.SelectedIndex != 1 {
		t.Errorf("Expected selected=1, got %d", state.SelectedIndex)
	}
}

func TestNavigateDownAtEnd(t *testing.T) {
	stubListing(t, EntryList{
		fsutil.NewEntry("file1.txt", fsutil.KindFile),
		fsutil.NewEntry("file2.txt", fsutil.KindFile),
	})
	state := NewAppState("/test", false)
	state.SelectedIndex = 1

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("Failed to navigate down: %v", err)
	}

	if state.SelectedIndex != 1 {
		t.Errorf("Should stay at 1, got %d", state.SelectedIndex)
	}
}

func TestNavigateUpAtStart(t *testing.T) {
	stubListing(t, EntryList{
		fsutil.NewEntry("file1.txt", fsutil.KindFile),
	})
	state := NewAppState("/test", false)

	reducer := NewStateReducer()
	if _, err := reducer.Reduce(state, NavigateUpAction{}); err != nil {
		t.Fatalf("Failed to navigate up: %v", err)
	}

	if state.SelectedIndex != 0 {
		t.Errorf("Should stay at 0, got %d", state.SelectedIndex)
	}
}

func TestNavigationOnEmptyListingStaysAtZero(t *testing.T) {
	stubListing(t, EntryList{})
	state := NewAppState("/empty", false)
	reducer := NewStateReducer()

	for _, action := range []Action{NavigateDownAction{}, NavigateUpAction{}, NavigateDownAction{}, ActivateAction{}} {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("%T failed: %v", action, err)
		}
		if state.SelectedIndex != 0 {
			t.Fatalf("%T moved selection to %d on empty listing", action, state.SelectedIndex)
		}
	}
}

func TestNavigationNeverLeavesBounds(t *testing.T) {
	entries := EntryList{
		fsutil.NewEntry("a", fsutil.KindFile),
		fsutil.NewEntry("b", fsutil.KindFile),
		fsutil.NewEntry("c", fsutil.KindFile),
	}
	stubListing(t, entries)
	state := NewAppState("/test", false)
	reducer := NewStateReducer()

	sequence := []Action{
		NavigateUpAction{}, NavigateDownAction{}, NavigateDownAction{}, NavigateDownAction{},
		NavigateDownAction{}, NavigateUpAction{}, NavigateDownAction{}, NavigateDownAction{},
		NavigateUpAction{}, NavigateUpAction{}, NavigateUpAction{}, NavigateUpAction{},
	}
	for i, action := range sequence {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if state.SelectedIndex < 0 || state.SelectedIndex > len(entries)-1 {
			t.Fatalf("step %d: selection %d out of bounds", i, state.SelectedIndex)
		}
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("expected selection back at 0, got %d", state.SelectedIndex)
	}
}

func TestNavigateDownClampsAfterListingShrinks(t *testing.T) {
	stubListing(t, EntryList{
		fsutil.NewEntry("a", fsutil.KindFile),
		fsutil.NewEntry("b", fsutil.KindFile),
	})
	state := NewAppState("/test", false)
	state.SelectedIndex = 7

	if _, err := NewStateReducer().Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("navigate down: %v", err)
	}
	if state.SelectedIndex != 1 {
		t.Fatalf("expected clamped selection 1, got %d", state.SelectedIndex)
	}
}

// ===== ACTIVATION TESTS =====

func TestActivateParentGoesToExactParent(t *testing.T) {
	dir := setupScenarioDir(t)
	sub := filepath.Join(dir, "docs")
	state := NewAppState(sub, false)

	if _, err := NewStateReducer().Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("activate parent: %v", err)
	}

	if state.CurrentPath != dir {
		t.Fatalf("expected path %q, got %q", dir, state.CurrentPath)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("expected selection reset, got %d", state.SelectedIndex)
	}
}

func TestActivateDirectoryEntersIt(t *testing.T) {
	dir := setupScenarioDir(t)
	state := NewAppState(dir, false)
	state.SelectedIndex = indexOf(state.Entries(), "docs")

	if _, err := NewStateReducer().Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("activate docs: %v", err)
	}

	if state.CurrentPath != filepath.Join(dir, "docs") {
		t.Fatalf("expected to enter docs, got %q", state.CurrentPath)
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("expected selection reset, got %d", state.SelectedIndex)
	}
}

func TestActivateFileKeepsState(t *testing.T) {
	dir := setupScenarioDir(t)
	state := NewAppState(dir, false)
	idx := indexOf(state.Entries(), "a.txt")
	state.SelectedIndex = idx

	if _, err := NewStateReducer().Reduce(state, ActivateAction{}); err != nil {
		t.Fatalf("activate file: %v", err)
	}

	if state.CurrentPath != dir || state.SelectedIndex != idx {
		t.Fatalf("file activation changed state: path=%q idx=%d", state.CurrentPath, state.SelectedIndex)
	}
}

func TestActivateVanishedDirectoryLeavesStateUnchanged(t *testing.T) {
	dir := t.TempDir()
	stubListing(t, EntryList{
		fsutil.NewEntry("gone", fsutil.KindDirectory),
	})
	state := NewAppState(dir, false)

	_, err := NewStateReducer().Reduce(state, ActivateAction{})

	var navErr *NavigationError
	if !errors.As(err, &navErr) {
		t.Fatalf("expected NavigationError, got %v", err)
	}
	if navErr.NotDir {
		t.Fatalf("missing directory should not be reported as not-a-directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if navErr.Notice() != "❌ Directory not found" {
		t.Fatalf("unexpected notice %q", navErr.Notice())
	}
	if state.CurrentPath != dir || state.SelectedIndex != 0 {
		t.Fatalf("state changed after failed activation: %+v", state)
	}
}

func TestActivateDirectoryReplacedByFileIsRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "was-dir"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stubListing(t, EntryList{
		fsutil.NewEntry("other", fsutil.KindFile),
		fsutil.NewEntry("was-dir", fsutil.KindDirectory),
	})
	state := NewAppState(dir, false)
	state.SelectedIndex = 1

	_, err := NewStateReducer().Reduce(state, ActivateAction{})

	var navErr *NavigationError
	if !errors.As(err, &navErr) || !navErr.NotDir {
		t.Fatalf("expected not-a-directory NavigationError, got %v", err)
	}
	if navErr.Notice() != "❌ Not a directory" {
		t.Fatalf("unexpected notice %q", navErr.Notice())
	}
	if state.CurrentPath != dir || state.SelectedIndex != 1 {
		t.Fatalf("state changed after failed activation: %+v", state)
	}
}

func TestActivateUnreadableDirectoryIsRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "locked"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stubListing(t, EntryList{
		fsutil.NewEntry("locked", fsutil.KindDirectory),
	})
	orig := readNamesFn
	readNamesFn = func(string) ([]string, error) { return nil, os.ErrPermission }
	t.Cleanup(func() { readNamesFn = orig })

	state := NewAppState(dir, false)
	_, err := NewStateReducer().Reduce(state, ActivateAction{})

	var navErr *NavigationError
	if !errors.As(err, &navErr) || !navErr.Unreadable {
		t.Fatalf("expected unreadable NavigationError, got %v", err)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected wrapped permission error, got %v", err)
	}
	if navErr.Notice() != "❌ Cannot open directory" {
		t.Fatalf("unexpected notice %q", navErr.Notice())
	}
	if state.CurrentPath != dir || state.SelectedIndex != 0 {
		t.Fatalf("state changed after failed activation: %+v", state)
	}
}

// ===== VIEW TESTS =====

func TestToggleHiddenScenario(t *testing.T) {
	dir := setupScenarioDir(t)
	state := NewAppState(dir, false)
	state.SelectedIndex = 2

	hiddenOff := state.Entries()
	if indexOf(hiddenOff, ".secret") != -1 {
		t.Fatalf(".secret listed while hidden files are off")
	}
	if len(hiddenOff) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(hiddenOff))
	}

	if _, err := NewStateReducer().Reduce(state, ToggleHiddenFilesAction{}); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if !state.ShowHidden {
		t.Fatalf("expected hidden files shown")
	}
	if state.SelectedIndex != 0 {
		t.Fatalf("expected selection reset, got %d", state.SelectedIndex)
	}
	hiddenOn := state.Entries()
	if len(hiddenOn) != 4 || indexOf(hiddenOn, ".secret") == -1 {
		t.Fatalf("expected .secret in listing, got %v", hiddenOn)
	}
}

func TestResizeDoesNotTouchNavigation(t *testing.T) {
	state := NewAppState("/test", true)
	state.SelectedIndex = 3

	if _, err := NewStateReducer().Reduce(state, ResizeAction{Width: 120, Height: 40}); err != nil {
		t.Fatalf("resize: %v", err)
	}

	if state.ScreenWidth != 120 || state.ScreenHeight != 40 {
		t.Fatalf("dimensions not updated: %dx%d", state.ScreenWidth, state.ScreenHeight)
	}
	if state.SelectedIndex != 3 || state.CurrentPath != "/test" || !state.ShowHidden {
		t.Fatalf("resize mutated navigation: %+v", state)
	}
}

func TestDismissNotice(t *testing.T) {
	state := NewAppState("/test", false)
	state.Notice = "❌ Not a directory"

	if _, err := NewStateReducer().Reduce(state, DismissNoticeAction{}); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if state.Notice != "" {
		t.Fatalf("notice not cleared: %q", state.Notice)
	}
}

func TestSelectedEntryClamps(t *testing.T) {
	state := NewAppState("/test", false)
	state.SelectedIndex = 9
	entries := EntryList{
		fsutil.NewEntry("a", fsutil.KindFile),
		fsutil.NewEntry("b", fsutil.KindFile),
	}

	if got := state.SelectedEntry(entries); got == nil || got.Name != "b" {
		t.Fatalf("expected clamped entry b, got %+v", got)
	}
	if got := state.SelectedEntry(nil); got != nil {
		t.Fatalf("expected nil entry for empty listing, got %+v", got)
	}
}
