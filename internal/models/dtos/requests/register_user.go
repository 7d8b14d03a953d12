package requests

// RegisterUser is the payload for POST /api/auth/register.
type RegisterUser struct {
	Username    string  `json:"username" validate:"required,min=3"`
	Password    string  `json:"password" validate:"required,min=6"`
	Email       string  `json:"email" validate:"required,email"`
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL" validate:"omitempty,url"`
	PhoneNumber *string `json:"phoneNumber"`
}
