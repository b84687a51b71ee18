package designationerrors

import (
	"net/http"

	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/apperror"
)

var (
	ErrDesignationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Designation not found",
		http.StatusNotFound,
	)
	ErrDesignationNameTaken = apperror.New(
		apperror.CodeConflict,
		"A designation with this name already exists",
		http.StatusConflict,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced department does not exist",
		http.StatusBadRequest,
	)
)
