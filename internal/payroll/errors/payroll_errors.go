package payrollerrors

import (
	"net/http"

	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No employee profile found for this account",
		http.StatusNotFound,
	)
	ErrInvalidActor = apperror.New(
		apperror.CodeInvalidInput,
		"Actor id is not a valid UUID",
		http.StatusBadRequest,
	)
)
