package employee

import (
	"errors"
	"testing"

	employeeerrors "github.com/KapilArunesshSS/brighttechrms/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func TestFormatRefID(t *testing.T) {
	assert.Equal(t, "RMS0001", FormatRefID(1))
	assert.Equal(t, "RMS0042", FormatRefID(42))
	assert.Equal(t, "RMS9999", FormatRefID(9999))
	// The suffix widens past four digits instead of wrapping
	assert.Equal(t, "RMS10000", FormatRefID(10000))
	assert.Equal(t, "RMS12345", FormatRefID(12345))
}

func TestParseRefID(t *testing.T) {
	seq, err := ParseRefID("RMS0001")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	seq, err = ParseRefID("RMS10000")
	assert.NoError(t, err)
	assert.Equal(t, int64(10000), seq)

	for _, bad := range []string{"", "RMS", "RMS001", "RMSabcd", "EMP0001", "0001", "RMS0001x"} {
		_, err := ParseRefID(bad)
		assert.Error(t, err, bad)
		assert.True(t, errors.Is(err, employeeerrors.ErrCorruptRefID), bad)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, seq := range []int64{1, 7, 9999, 10000, 123456} {
		got, err := ParseRefID(FormatRefID(seq))
		assert.NoError(t, err)
		assert.Equal(t, seq, got)
	}
}
