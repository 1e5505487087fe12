package employee

// StatusClears names the dependent fields a status write invalidates.
// The clears apply on every update carrying a non-matching status, even
// when the caller did not touch those fields.
type StatusClears struct {
	Remarks     bool
	OfferLetter bool
}

// ClearsForStatus is the transition table behind the "set status"
// operation: remarks only survive a rejected status, an offer letter
// only survives an offered status.
func ClearsForStatus(status string) StatusClears {
	return StatusClears{
		Remarks:     status != StatusRejected,
		OfferLetter: status != StatusOffered,
	}
}
