package report

type CreateReportRequest struct {
	ReportDate string `json:"report_date" binding:"required"`
	Title      string `json:"title" binding:"required,max=100"`
	Content    string `json:"content" binding:"required"`
}

// UpdateReportRequest is a partial patch; empty fields keep the stored
// values.
type UpdateReportRequest struct {
	ReportDate string `json:"report_date"`
	Title      string `json:"title" binding:"omitempty,max=100"`
	Content    string `json:"content"`
}

type ReportResponse struct {
	ID           string `json:"id"`
	ReportDate   string `json:"report_date"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name,omitempty"`
	DeleteFlag   bool   `json:"delete_flag"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
