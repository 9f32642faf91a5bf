package dto

import (
	"errors"
	"strings"

	"procurement-api/internal/models"
)

// ProcurementRequest is the body of POST /recommend-procurement.
// Fields are pointers so that a missing field can be told apart from a
// zero value and rejected before any upstream call is made.
type ProcurementRequest struct {
	MaterialName *string  `json:"material_name"`
	Quantity     *int     `json:"quantity"`
	Location     *string  `json:"location"`
	Budget       *float64 `json:"budget"`
}

// Validate checks that every required field is present. Strings must be
// non-blank; numeric fields only have to be present.
func (r *ProcurementRequest) Validate() error {
	if r.MaterialName == nil || strings.TrimSpace(*r.MaterialName) == "" {
		return errors.New("material_name is required")
	}
	if r.Quantity == nil {
		return errors.New("quantity is required")
	}
	if r.Location == nil || strings.TrimSpace(*r.Location) == "" {
		return errors.New("location is required")
	}
	if r.Budget == nil {
		return errors.New("budget is required")
	}
	return nil
}

type ProcurementResponse struct {
	Material       string            `json:"material"`
	Location       string            `json:"location"`
	Budget         float64           `json:"budget"`
	Recommendation string            `json:"recommendation"`
	TopSuppliers   []models.Supplier `json:"top_suppliers"`
}
