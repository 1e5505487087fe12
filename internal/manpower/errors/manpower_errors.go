package manpowererrors

import (
	"net/http"

	"github.com/KapilArunesshSS/brighttechrms/internal/shared/apperror"
)

var (
	ErrMissingSiteOrDate = apperror.New(
		apperror.CodeInvalidInput,
		"Please select both Site and Date.",
		http.StatusBadRequest,
	)
	ErrInvalidReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmptyBatch = apperror.New(
		apperror.CodeInvalidInput,
		"No attendance rows found in submission",
		http.StatusBadRequest,
	)
)
