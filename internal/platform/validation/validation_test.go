package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"user@example.c", false},
		{"user@example", false},
		{"userexample.com", false},
		{"us er@example.com", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsEmail(tt.in), tt.in)
	}
}

func TestIsPhone(t *testing.T) {
	t.Parallel()

	assert.True(t, IsPhone("0123456789"))
	assert.False(t, IsPhone("123456789"))
	assert.False(t, IsPhone("12345678901"))
	assert.False(t, IsPhone("12345-6789"))
	assert.False(t, IsPhone(""))
}

func TestRegisterOn(t *testing.T) {
	t.Parallel()

	type form struct {
		Title string `validate:"notblank"`
		Email string `validate:"mailaddr"`
		Phone string `validate:"omitempty,phone10"`
	}

	v := validator.New()
	require.NoError(t, RegisterOn(v))

	tests := []struct {
		name    string
		in      form
		wantErr bool
	}{
		{"valid", form{Title: "Hello", Email: "a@b.io"}, false},
		{"valid with phone", form{Title: "Hello", Email: "a@b.io", Phone: "0123456789"}, false},
		{"blank title", form{Title: "   ", Email: "a@b.io"}, true},
		{"bad email", form{Title: "Hello", Email: "a@b"}, true},
		{"bad phone", form{Title: "Hello", Email: "a@b.io", Phone: "12"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegister_Idempotent(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	type form struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"mailaddr"`
		Password string `json:"password" validate:"min=8"`
		Phone    string `json:"phone" validate:"omitempty,phone10"`
	}

	v := validator.New()
	require.NoError(t, RegisterOn(v))

	tests := []struct {
		name string
		in   form
		want string
	}{
		{"required", form{Email: "a@b.io", Password: "password1"}, "name is required"},
		{"email", form{Name: "alice", Email: "nope", Password: "password1"}, "email must be a valid email address"},
		{"min", form{Name: "alice", Email: "a@b.io", Password: "short"}, "password must be at least 8 characters"},
		{"phone", form{Name: "alice", Email: "a@b.io", Password: "password1", Phone: "1"}, "phone must be 10 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(v.Struct(tt.in)))
		})
	}

	assert.Equal(t, "invalid request body", Describe(errors.New("unexpected EOF")))
}
