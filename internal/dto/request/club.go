package request

type ClubRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Country     string  `json:"country" validate:"required,min=1,max=100"`
	Level       string  `json:"level" validate:"required,min=1,max=50"`
	ShortName   *string `json:"shortName,omitempty" validate:"omitempty,min=1,max=10"`
	Logo        *string `json:"logo,omitempty"`
	Badge       *string `json:"badge,omitempty"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	FoundedYear *int    `json:"foundedYear,omitempty" validate:"omitempty,gte=1800,lte=2100"`
}

type ClubUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Country     *string `json:"country,omitempty" validate:"omitempty,min=1,max=100"`
	Level       *string `json:"level,omitempty" validate:"omitempty,min=1,max=50"`
	ShortName   *string `json:"shortName,omitempty" validate:"omitempty,min=1,max=10"`
	Logo        *string `json:"logo,omitempty"`
	Badge       *string `json:"badge,omitempty"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	FoundedYear *int    `json:"foundedYear,omitempty" validate:"omitempty,gte=1800,lte=2100"`
}
