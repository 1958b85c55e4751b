package dto

// CreateItemRequest entrada para agregar un ítem al catálogo.
type CreateItemRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Unit string `json:"unit" validate:"required,min=1,max=50"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// ItemListResponse lista completa del catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
