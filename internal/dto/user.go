package dto

// ── User DTOs ──

// UserListRequest filters GET /users.
type UserListRequest struct {
	PaginationRequest
	Role    string `form:"role"    binding:"omitempty,oneof=admin guru siswa wali"`
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
}

// CreateUserRequest creates an account directly (admin only).
type CreateUserRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Role     string `json:"role"     binding:"required,oneof=admin guru siswa wali"`
}

// UpdateUserRequest patches an account. Nil fields stay untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"  binding:"omitempty,oneof=admin guru siswa wali"`
}

// ResetPasswordResponse returns the temporary password the admin hands out.
type ResetPasswordResponse struct {
	TempPassword string `json:"temp_password"`
}

// UserResponse is the sanitised account view.
type UserResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
	CreatedAt          string `json:"created_at"`
}
