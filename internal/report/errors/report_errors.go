package reporterrors

import (
	"net/http"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrReportDateTaken = apperror.New(
		apperror.CodeConflict,
		"A report already exists for this employee on this date",
		http.StatusConflict,
	)
	ErrInvalidReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report ID",
		http.StatusBadRequest,
	)
)
