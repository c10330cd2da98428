package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}

// ActivateAction opens the selected entry (Enter).
type ActivateAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleHiddenFilesAction struct{}

// DismissNoticeAction clears the transient notice.
type DismissNoticeAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
