package inventory

import (
	"strings"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

const maxSKULen = 32

// ListItemsInput holds parameters for the list operation. Search takes
// precedence over Category when both are present.
type ListItemsInput struct {
	Page     int
	Limit    int
	Sort     string
	Category string
	Search   string
}

// Validate validates the list input.
func (i ListItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Category != "" && !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateItemInput holds parameters for the create operation. A nil
// LowStockThreshold means the default threshold; an empty SKU means one is
// generated from the category.
type CreateItemInput struct {
	Name              string
	Description       string
	Category          string
	SKU               string
	Quantity          int
	Price             float64
	LowStockThreshold *int
}

// Validate validates the create input. Field-level range checks live in the
// repository rules; here we check only what the service itself acts on before
// the insert.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !domain.Category(i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if len(strings.TrimSpace(i.SKU)) > maxSKULen {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateItemInput holds parameters for the update operation. Nil fields are
// left untouched.
type UpdateItemInput struct {
	Name              *string
	Description       *string
	Category          *string
	SKU               *string
	Quantity          *int
	Price             *float64
	LowStockThreshold *int
}

// Validate validates the update input.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !domain.Category(*i.Category).IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
	}
	if i.SKU != nil {
		sku := strings.TrimSpace(*i.SKU)
		if sku == "" {
			errs = append(errs, domain.FieldError{Field: "sku", Message: "must not be empty"})
		} else if len(sku) > maxSKULen {
			errs = append(errs, domain.FieldError{Field: "sku", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
