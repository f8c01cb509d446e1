package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testAllowList = []string{"admin111", "admin222"}

func TestValidateAdminCodes(t *testing.T) {
	tests := []struct {
		name    string
		codes   []string
		wantErr bool
	}{
		{name: "single valid code", codes: []string{"admin111"}},
		{name: "both valid codes", codes: []string{"admin111", "admin222"}},
		{name: "one invalid code fails the batch", codes: []string{"admin111", "bogus"}, wantErr: true},
		{name: "all invalid", codes: []string{"bogus"}, wantErr: true},
		{name: "empty batch", codes: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminCodes(tt.codes, testAllowList)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAdminCodes_namesTheBadCode(t *testing.T) {
	err := ValidateAdminCodes([]string{"admin111", "bogus"}, testAllowList)
	assert.ErrorContains(t, err, "invalid admin code: bogus")
}
