package employeeerrors

import (
	"net/http"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeDuplicate = apperror.New(
		apperror.CodeConflict,
		"Employee code is already in use",
		http.StatusConflict,
	)
	ErrSelfDelete = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be ADMIN or GENERAL",
		http.StatusBadRequest,
	)
)
