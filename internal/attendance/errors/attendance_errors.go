package attendanceerrors

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
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"Already punched in for today",
		http.StatusConflict,
	)
	ErrNotPunchedIn = apperror.New(
		apperror.CodeInvalidState,
		"No punch-in found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyPunchedOut = apperror.New(
		apperror.CodeConflict,
		"Already punched out for today",
		http.StatusConflict,
	)
)
