package service

import (
	"regexp"
	"strconv"
	"strings"

	"fitbite/internal/errors"
)

// RUTValidator validates Chilean tax identifiers used on billing documents.
type RUTValidator struct{}

// NewRUTValidator creates a new RUT validator.
func NewRUTValidator() *RUTValidator {
	return &RUTValidator{}
}

var rutFormatRegex = regexp.MustCompile(`^\d{1,8}[0-9K]$`)

// ValidateRUT checks the format and mod-11 check digit of a RUT such as
// "12.345.678-5". Dots and the hyphen are optional; the check digit may be
// lowercase k.
func (v *RUTValidator) ValidateRUT(rut string) error {
	normalized := v.Normalize(rut)
	if !rutFormatRegex.MatchString(normalized) {
		return errors.ErrInvalidRUT
	}

	body := normalized[:len(normalized)-1]
	checkDigit := normalized[len(normalized)-1:]

	if v.computeCheckDigit(body) != checkDigit {
		return errors.ErrInvalidRUT
	}
	return nil
}

// Normalize strips dots and hyphens and upcases the check digit.
func (v *RUTValidator) Normalize(rut string) string {
	normalized := strings.ReplaceAll(rut, ".", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	return strings.ToUpper(strings.TrimSpace(normalized))
}

// computeCheckDigit implements the mod-11 scheme: digits are weighted
// 2,3,4,5,6,7 from right to left, cycling; 11 maps to 0 and 10 to K.
func (v *RUTValidator) computeCheckDigit(body string) string {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit, err := strconv.Atoi(string(body[i]))
		if err != nil {
			return ""
		}
		sum += digit * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}

	switch remainder := 11 - sum%11; remainder {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(remainder)
	}
}
