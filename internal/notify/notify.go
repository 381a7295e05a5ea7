// Package notify posts topology-change events to chat channels so the
// engineering group hears about matrix rebuilds.
package notify

import (
	"fmt"
	"strings"
)

// Notifier posts a plain-text message to one destination.
type Notifier interface {
	Name() string
	Post(text string) error
}

// Multi fans a message out to every configured notifier.
type Multi []Notifier

// Post sends text to all notifiers, collecting per-destination failures.
// One destination failing does not stop the others.
func (m Multi) Post(text string) error {
	var errs []string
	for _, n := range m {
		if err := n.Post(text); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", n.Name(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: %s", strings.Join(errs, "; "))
	}
	return nil
}

// RowAdded formats the announcement for a new custom row.
func RowAdded(prefix string, positions int) string {
	return fmt.Sprintf("cabledb: custom row %s added (%d positions); distance matrix rebuilt, manual overrides reset", prefix, positions)
}

// RowRemoved formats the announcement for a removed custom row.
func RowRemoved(prefix string) string {
	return fmt.Sprintf("cabledb: custom row %s removed; distance matrix rebuilt, manual overrides reset", prefix)
}
