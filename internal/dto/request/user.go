package request

type UserUpdateRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin coach player"`
	Club     *string `json:"club,omitempty" validate:"omitempty,uuid"`
	IsActive *bool   `json:"is_active,omitempty"`
}
