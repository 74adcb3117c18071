package dto

type CreateCustomerDTO struct {
	Name  string  `json:"name" validate:"required"`
	City  *string `json:"city"`
	Notes *string `json:"notes"`
}

type UpdateCustomerDTO struct {
	Name  string  `json:"name" validate:"required"`
	City  *string `json:"city"`
	Notes *string `json:"notes"`
}

type CustomerDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	City      *string `json:"city,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}
