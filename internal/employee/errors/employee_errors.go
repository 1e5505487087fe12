package employeeerrors

import (
	"net/http"

	"github.com/KapilArunesshSS/brighttechrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrContactNumberExists = apperror.New(
		apperror.CodeConflict,
		"This contact number already exists. Please use a different one.",
		http.StatusConflict,
	)
	ErrRefIDExists = apperror.New(
		apperror.CodeConflict,
		"Reference id already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown application status",
		http.StatusBadRequest,
	)
	ErrCorruptRefID = apperror.New(
		apperror.CodeDataIntegrity,
		"Stored reference id does not match the expected RMS format",
		http.StatusInternalServerError,
	)

	// Summary endpoint errors carry the exact messages the dashboard
	// frontend matches on.
	ErrMissingSummaryParams = apperror.New(
		apperror.CodeInvalidInput,
		"Missing date or site parameters",
		http.StatusBadRequest,
	)
	ErrInvalidSummaryJSON = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid JSON format",
		http.StatusBadRequest,
	)
	ErrInvalidSummaryDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
