// AngelaMos | 2026
// dto.go

package session

type RegisterForm struct {
	Name     string `validate:"required,min=1,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=128"`
}

type LoginForm struct {
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required"`
}
