package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "realestate/pkg/domain-errors"
)

// Catalog identifiers. New ids are random UUID strings; ids read from storage
// or from another entity are accepted in any non-blank form.
type (
	OwnerID    string
	PropertyID string
	ImageID    string
	TraceID    string
)

func NewOwnerID() OwnerID       { return OwnerID(uuid.NewString()) }
func NewPropertyID() PropertyID { return PropertyID(uuid.NewString()) }
func NewImageID() ImageID       { return ImageID(uuid.NewString()) }
func NewTraceID() TraceID       { return TraceID(uuid.NewString()) }

func (i OwnerID) String() string    { return string(i) }
func (i PropertyID) String() string { return string(i) }
func (i ImageID) String() string    { return string(i) }
func (i TraceID) String() string    { return string(i) }

// ParseOwnerID trims s and rejects blank or malformed input.
func ParseOwnerID(s string) (OwnerID, error) {
	v, err := parseID(s, "owner id")
	return OwnerID(v), err
}

// ParsePropertyID trims s and rejects blank or malformed input.
func ParsePropertyID(s string) (PropertyID, error) {
	v, err := parseID(s, "property id")
	return PropertyID(v), err
}

const maxIDLength = 64

func parseID(s, label string) (string, error) {
	if !utf8.ValidString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" must be valid UTF-8")
	}
	v := strings.TrimSpace(s)
	if v == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	if utf8.RuneCountInString(v) > maxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" is too long")
	}
	if strings.IndexFunc(v, unicode.IsControl) >= 0 {
		return "", dErrors.New(dErrors.CodeInvalidInput, label+" contains control characters")
	}
	return v, nil
}
