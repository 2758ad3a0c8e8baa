package models

// LoginForm is the body of POST /login.
type LoginForm struct {
	// Login accepts either the login name or the e-mail address.
	Login    string `form:"login" validate:"required,max=255"`
	Password string `form:"password" validate:"required,max=72"`
	Remember bool   `form:"remember"`
}

// ForgotPasswordForm is the body of POST /forgot-password.
type ForgotPasswordForm struct {
	Login string `form:"login" validate:"required,max=255"`
}

// ResetPasswordForm is the body of POST /reset-password/{token}.
// Token is taken from the path, not from the form.
type ResetPasswordForm struct {
	Token                string `form:"-" validate:"required"`
	Password             string `form:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,eqfield=Password"`
}

// ManualBanForm is the body of POST /admin/bans.
type ManualBanForm struct {
	IP     string `form:"ip" validate:"required,ip"`
	Reason string `form:"reason" validate:"max=255"`
}

// NewUserForm holds the arguments of cmd/useradd.
type NewUserForm struct {
	Login    string `form:"login" validate:"required,max=255"`
	Email    string `form:"email" validate:"omitempty,email,max=255"`
	Name     string `form:"name" validate:"required,max=255"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}
