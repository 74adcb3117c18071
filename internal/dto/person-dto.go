package dto

type CreatePersonDTO struct {
	Name   string  `json:"name" validate:"required"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   string  `json:"role" validate:"required"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type UpdatePersonDTO struct {
	Name   string  `json:"name" validate:"required"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Role   string  `json:"role" validate:"required"`
	Status string  `json:"status" validate:"required"`
	Notes  *string `json:"notes"`
}

type PersonDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}
