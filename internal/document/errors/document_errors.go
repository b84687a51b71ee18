package documenterrors

import (
	"net/http"

	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/apperror"
)

var (
	ErrDocumentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Document not found",
		http.StatusNotFound,
	)
	ErrInvalidDocumentType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown document type",
		http.StatusBadRequest,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeConflict,
		"Document has already been reviewed",
		http.StatusConflict,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidReviewer = apperror.New(
		apperror.CodeInvalidInput,
		"Reviewer id is not a valid UUID",
		http.StatusBadRequest,
	)
)
