// Package cable manages the facility cable records: CSV import/export,
// rack-name normalization, and filling missing lengths from the distance
// matrix.
package cable

import (
	"strings"

	"github.com/tinrooster/cabledb/internal/matrix"
)

// NormalizeRack extracts the rack position from a cable endpoint label and
// resolves it against the matrix position list. The rack id is the leading
// token of the label (e.g. "TG01 PATCH A" -> "TG01"); a leading T is
// optional, so "G01" also resolves to "TG01".
func NormalizeRack(label string, snap *matrix.Snapshot) (string, bool) {
	token := strings.ToUpper(strings.TrimSpace(label))
	if i := strings.IndexAny(token, " \t/-"); i >= 0 {
		token = token[:i]
	}
	if token == "" {
		return "", false
	}
	if len(token) > 4 {
		token = token[:4]
	}
	if _, ok := snap.Index(token); ok {
		return token, true
	}
	if with := "T" + token; len(with) <= 4 {
		if _, ok := snap.Index(with); ok {
			return with, true
		}
	}
	return "", false
}
