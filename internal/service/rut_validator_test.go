package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "fitbite/internal/errors"
)

func TestRUTValidator_ValidateRUT(t *testing.T) {
	validator := NewRUTValidator()

	tests := []struct {
		name    string
		rut     string
		wantErr bool
	}{
		{name: "valid with dots and hyphen", rut: "12.345.678-5"},
		{name: "valid without dots", rut: "12345678-5"},
		{name: "valid without separators", rut: "123456785"},
		{name: "valid with K check digit", rut: "8.888.888-K"},
		{name: "valid with lowercase k", rut: "8888888-k"},
		{name: "valid short body", rut: "7.654.321-6"},
		{name: "wrong check digit", rut: "12.345.678-9", wantErr: true},
		{name: "wrong check digit plain", rut: "11.222.333-4", wantErr: true},
		{name: "empty", rut: "", wantErr: true},
		{name: "letters in body", rut: "12.3A5.678-5", wantErr: true},
		{name: "too long", rut: "123.456.789-0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateRUT(tt.rut)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidRUT)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRUTValidator_Normalize(t *testing.T) {
	validator := NewRUTValidator()

	assert.Equal(t, "123456785", validator.Normalize("12.345.678-5"))
	assert.Equal(t, "8888888K", validator.Normalize(" 8.888.888-k "))
}
