package taxerrors

import (
	"net/http"

	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No employee profile found for this account",
		http.StatusNotFound,
	)
	ErrInvalidFinancialYear = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid financial year, expected format 2024-25",
		http.StatusBadRequest,
	)
)
