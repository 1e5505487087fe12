package employee

import (
	"fmt"
	"regexp"

	employeeerrors "github.com/KapilArunesshSS/brighttechrms/internal/employee/errors"
)

// RefSequenceName keys the shared counter backing reference id
// allocation.
const RefSequenceName = "employee_ref"

const refIDPrefix = "RMS"

// Suffix is zero-padded to 4 digits; a 5th digit appears naturally once
// the sequence passes 9999.
var refIDPattern = regexp.MustCompile(`^RMS(\d{4,})$`)

// FormatRefID renders a sequence number as a reference id, e.g.
// 1 -> RMS0001, 12345 -> RMS12345.
func FormatRefID(seq int64) string {
	return fmt.Sprintf("%s%04d", refIDPrefix, seq)
}

// ParseRefID extracts the sequence number from a stored reference id.
// A value that does not match the expected prefix and numeric suffix is
// a data-integrity problem, not a recoverable input error.
func ParseRefID(refID string) (int64, error) {
	m := refIDPattern.FindStringSubmatch(refID)
	if m == nil {
		return 0, employeeerrors.ErrCorruptRefID
	}
	var seq int64
	if _, err := fmt.Sscanf(m[1], "%d", &seq); err != nil {
		return 0, employeeerrors.ErrCorruptRefID
	}
	return seq, nil
}
