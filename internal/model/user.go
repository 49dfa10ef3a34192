package model

// Role values for User.Role.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "guru"
	RoleStudent = "siswa"
	RoleParent  = "wali"
)

// User is an account that can log in. Maps table users.
type User struct {
	UserID             string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name               string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email              string `gorm:"type:varchar(255);not null"                     json:"email"`
	PasswordHash       string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role               string `gorm:"type:varchar(20);not null;default:'siswa'"      json:"role"`
	MustChangePassword bool   `gorm:"not null;default:false"                         json:"must_change_password"`
	SoftDeleteModel
}

func (User) TableName() string { return "users" }
