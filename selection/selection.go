package selection

import "fmt"

// Selection is a read-only view of the items the user has selected in the host.
// The host owns the underlying collection; implementations must not be mutated
// by callers. A nil Selection means the host passed no selection at all.
type Selection interface {
	// Count returns the number of selected items.
	Count() int
	// PathAt returns the filesystem display path of the item at index i.
	PathAt(i int) (string, error)
}

// Items adapts a plain slice of paths to the Selection interface. It is the
// adapter used by the CLI harness and by tests.
type Items []string

var _ Selection = Items(nil)

func (s Items) Count() int {
	return len(s)
}

func (s Items) PathAt(i int) (string, error) {
	if i < 0 || i >= len(s) {
		return "", fmt.Errorf("selection index %d out of range (%d items)", i, len(s))
	}
	return s[i], nil
}
