package models

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
)

// Field limits shared by entity validation and filter parameter checks.
const (
	MaxNameLength         = 100
	MaxAddressLength      = 200
	MaxCodeInternalLength = 20
	MaxPrice              = 1_000_000_000
	MinYear               = 1800
)

func invalid(field, message string) error {
	return dErrors.NewField(dErrors.CodeInvariantViolation, field, message)
}

// requireText rejects blank values and values longer than max characters.
// The limit applies to the raw input; the stored value is trimmed.
func requireText(field, label, value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalid(field, label+" cannot be empty")
	}
	if utf8.RuneCountInString(value) > max {
		return "", invalid(field, fmt.Sprintf("%s cannot exceed %d characters", label, max))
	}
	return trimmed, nil
}

// ownerRef and propertyRef parse references to other entities. The id parse
// error is re-coded as an invariant violation on field.
func ownerRef(field, value string) (id.OwnerID, error) {
	v, err := id.ParseOwnerID(value)
	if err != nil {
		return "", invalid(field, err.Error())
	}
	return v, nil
}

func propertyRef(field, value string) (id.PropertyID, error) {
	v, err := id.ParsePropertyID(value)
	if err != nil {
		return "", invalid(field, err.Error())
	}
	return v, nil
}

// isAbsoluteURL accepts only absolute, well-formed URLs such as
// https://cdn.example.com/a.jpg. Relative paths are rejected.
func isAbsoluteURL(value string) bool {
	if !govalidator.IsRequestURL(value) {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return u.IsAbs() && (u.Host != "" || u.Opaque != "")
}

func requireURL(field, label, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", invalid(field, label+" cannot be empty")
	}
	if !isAbsoluteURL(trimmed) {
		return "", invalid(field, label+" must be a valid URL")
	}
	return trimmed, nil
}

func notInFuture(field, label string, t, now time.Time) error {
	if t.After(now) {
		return invalid(field, label+" cannot be in the future")
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validatePrice(price float64) error {
	if !isFinite(price) || price <= 0 {
		return invalid("price", "price must be greater than zero")
	}
	if price > MaxPrice {
		return invalid("price", "price cannot exceed 1 billion")
	}
	return nil
}

func validateYear(year int, now time.Time) error {
	maxYear := now.Year() + 1
	if year < MinYear || year > maxYear {
		return invalid("year", fmt.Sprintf("year must be between %d and %d", MinYear, maxYear))
	}
	return nil
}

func normalizeCodeInternal(code string) (string, error) {
	trimmed, err := requireText("codeInternal", "code internal", code, MaxCodeInternalLength)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(trimmed), nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
