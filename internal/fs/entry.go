package fs

import "golang.org/x/text/unicode/norm"

// Kind classifies an entry in a directory listing.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindInaccessible
	KindError
)

// ParentName is the name of the synthetic entry leading to the parent directory.
const ParentName = ".."

const parentLabel = "📁 .. (parent directory)"

// Entry represents a single navigable item of a listing.
type Entry struct {
	Name  string
	Kind  Kind
	Label string
}

// EntryList is a listing in display order: parent entry first, then directory
// contents in enumeration order.
type EntryList []Entry

// IsDir reports whether the entry can be entered.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// IsParent reports whether the entry is the synthetic parent marker.
func (e Entry) IsParent() bool {
	return e.Kind == KindDirectory && e.Name == ParentName
}

// KindIcon returns the icon used for kind in labels and previews.
func KindIcon(kind Kind) string {
	switch kind {
	case KindDirectory:
		return "📁"
	case KindInaccessible:
		return "⚠"
	case KindError:
		return "❌"
	default:
		return "📄"
	}
}

// NewEntry builds an entry for name with a label derived from kind.
func NewEntry(name string, kind Kind) Entry {
	return Entry{
		Name:  name,
		Kind:  kind,
		Label: EntryLabel(name, kind),
	}
}

// EntryLabel derives the display label of an entry.
func EntryLabel(name string, kind Kind) string {
	if kind == KindDirectory && name == ParentName {
		return parentLabel
	}
	display := norm.NFC.String(name)
	switch kind {
	case KindDirectory:
		return KindIcon(kind) + " " + display + "/"
	case KindError:
		return KindIcon(kind) + " Error: " + display
	default:
		return KindIcon(kind) + " " + display
	}
}

func parentEntry() Entry {
	return Entry{
		Name:  ParentName,
		Kind:  KindDirectory,
		Label: parentLabel,
	}
}

func errorEntry(err error) Entry {
	return Entry{
		Name:  err.Error(),
		Kind:  KindError,
		Label: EntryLabel(err.Error(), KindError),
	}
}
