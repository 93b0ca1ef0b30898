package request

type PlayerRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Age          int     `json:"age" validate:"required,gte=10,lte=99"`
	Club         string  `json:"club" validate:"required,uuid"`
	Country      string  `json:"country" validate:"required,min=1,max=100"`
	Gender       *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Photo        *string `json:"photo,omitempty"`
	JerseyNumber *int    `json:"jerseyNumber,omitempty" validate:"omitempty,gte=0,lte=99"`
	Position     *string `json:"position,omitempty" validate:"omitempty,uuid"`
}

type PlayerUpdateRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age          *int    `json:"age,omitempty" validate:"omitempty,gte=10,lte=99"`
	Club         *string `json:"club,omitempty" validate:"omitempty,uuid"`
	Country      *string `json:"country,omitempty" validate:"omitempty,min=1,max=100"`
	Gender       *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Photo        *string `json:"photo,omitempty"`
	JerseyNumber *int    `json:"jerseyNumber,omitempty" validate:"omitempty,gte=0,lte=99"`
	Position     *string `json:"position,omitempty" validate:"omitempty,uuid"`
}
