package request_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CreateCatalogEntryRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
	Unit     string          `json:"unit"`
	Notes    string          `json:"notes"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}

type UpdateCatalogEntryRequest struct {
	ID       uuid.UUID       `json:"id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Currency string          `json:"currency" binding:"required,len=3"`
	Unit     string          `json:"unit"`
	Notes    string          `json:"notes"`
	Payload  json.RawMessage `json:"payload" binding:"required"`
}
