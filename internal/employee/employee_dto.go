package employee

type CreateEmployeeRequest struct {
	Code     string `json:"code" binding:"required,max=10,alphanum"`
	Name     string `json:"name" binding:"required,max=20"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=ADMIN GENERAL"`
}

// UpdateEmployeeRequest carries a partial patch. An empty password keeps the
// stored hash; empty name/role leave the stored values untouched.
type UpdateEmployeeRequest struct {
	Name     string `json:"name" binding:"omitempty,max=20"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN GENERAL"`
}

type EmployeeResponse struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	DeleteFlag bool   `json:"delete_flag"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
