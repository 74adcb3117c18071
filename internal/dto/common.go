package dto

type ShortLocationDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type ShortCustomerDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortPersonDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type ShortEquipmentTypeDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
