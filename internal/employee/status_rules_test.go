package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearsForStatus(t *testing.T) {
	tests := []struct {
		status      string
		remarks     bool
		offerLetter bool
	}{
		{StatusRejected, false, true},
		{StatusOffered, true, false},
		{StatusSelected, true, true},
		{StatusJoined, true, true},
		{StatusPending, true, true},
		{StatusLeft, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			clears := ClearsForStatus(tt.status)
			assert.Equal(t, tt.remarks, clears.Remarks)
			assert.Equal(t, tt.offerLetter, clears.OfferLetter)
		})
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range SummaryStatuses {
		assert.True(t, IsKnownStatus(s), s)
	}
	assert.False(t, IsKnownStatus("archived"))
	assert.False(t, IsKnownStatus(""))
	assert.False(t, IsKnownStatus("Selected"))
}
