package request_models

type CreateAccountRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
}

// UpdateAccountRequest carries only the fields the caller wants changed;
// empty fields are left untouched.
type UpdateAccountRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}
