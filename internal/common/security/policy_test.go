package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"idento/internal/common/security"
)

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantOK   bool
		wantMsg  string
	}{
		{
			name:     "too short",
			password: "short1",
			wantOK:   false,
			wantMsg:  "Password must be at least 8 characters.",
		},
		{
			name:     "no digit",
			password: "alphabetical",
			wantOK:   false,
			wantMsg:  "Password must include at least one number.",
		},
		{
			name:     "no letter",
			password: "12345678",
			wantOK:   false,
			wantMsg:  "Password must include letters.",
		},
		{
			name:     "valid",
			password: "abc12345",
			wantOK:   true,
		},
		{
			name:     "length checked before digit",
			password: "abcdefg",
			wantOK:   false,
			wantMsg:  "Password must be at least 8 characters.",
		},
		{
			name:     "symbols alone do not satisfy letter rule",
			password: "1234567!",
			wantOK:   false,
			wantMsg:  "Password must include letters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := security.ValidatePasswordPolicy(tt.password)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
