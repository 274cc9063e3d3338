package store

import (
	"fmt"
	"strings"

	"github.com/avoronin/stockpile-backend/internal/domain"
)

// Rule is a declarative per-field validation rule, checked by Create against
// the full value set and by UpdateByID against the patched fields only.
// Zero values disable the corresponding check (MaxLen 0 = unlimited, nil Min =
// no lower bound, empty Enum = any value).
type Rule struct {
	// Column is the table column the rule applies to (key in value maps).
	Column string
	// Field is the API-facing name used in validation messages.
	// Defaults to Column when empty.
	Field string

	Required bool
	MaxLen   int
	Min      *float64
	Enum     []string
}

func (r Rule) fieldName() string {
	if r.Field != "" {
		return r.Field
	}
	return r.Column
}

// Float64 is a convenience for Rule.Min literals.
func Float64(v float64) *float64 { return &v }

// validate checks values against the rules. When full is true every rule is
// applied (create); otherwise only rules whose column appears in values
// (patch). Returns a *domain.ValidationError listing every violation.
func validate(rules []Rule, values map[string]any, full bool) error {
	var errs []domain.FieldError

	for _, r := range rules {
		v, present := values[r.Column]

		if !present {
			if full && r.Required {
				errs = append(errs, domain.FieldError{Field: r.fieldName(), Message: "required"})
			}
			continue
		}

		errs = append(errs, checkRule(r, v)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// checkRule applies a single rule to a present value.
func checkRule(r Rule, v any) []domain.FieldError {
	var errs []domain.FieldError

	if v == nil {
		if r.Required {
			errs = append(errs, domain.FieldError{Field: r.fieldName(), Message: "required"})
		}
		return errs
	}

	if s, ok := stringValue(v); ok {
		s = strings.TrimSpace(s)
		if r.Required && s == "" {
			errs = append(errs, domain.FieldError{Field: r.fieldName(), Message: "required"})
			return errs
		}
		if r.MaxLen > 0 && len(s) > r.MaxLen {
			errs = append(errs, domain.FieldError{
				Field:   r.fieldName(),
				Message: fmt.Sprintf("must be at most %d characters", r.MaxLen),
			})
		}
		if len(r.Enum) > 0 && s != "" && !contains(r.Enum, s) {
			errs = append(errs, domain.FieldError{
				Field:   r.fieldName(),
				Message: fmt.Sprintf("%q is not a valid value", s),
			})
		}
		return errs
	}

	if f, ok := floatValue(v); ok {
		if r.Min != nil && f < *r.Min {
			errs = append(errs, domain.FieldError{
				Field:   r.fieldName(),
				Message: fmt.Sprintf("must be at least %v", *r.Min),
			})
		}
		return errs
	}

	return errs
}

// stringValue extracts a string from plain strings and string-backed enums.
func stringValue(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

// floatValue extracts a numeric value from the integer and float types the
// domain uses.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func contains(set []string, s string) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}
	return false
}
