package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccount(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"users:1234:main", false},
		{"@users:1234:main", false},
		{"world", false},
		{"platform_fees-eu", false},
		{"", true},
		{"@", true},
		{"users::main", true},
		{"users:main:", true},
		{"users main", true},
		{"users:é", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateAccount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("*"))
	assert.NoError(t, ValidateAmount("0"))
	assert.NoError(t, ValidateAmount("5000"))
	assert.Error(t, ValidateAmount("-1"))
	assert.Error(t, ValidateAmount("1.5"))
	assert.Error(t, ValidateAmount("ten"))
	assert.Error(t, ValidateAmount(""))
	assert.Error(t, ValidateAmount("1e3"))
	assert.Error(t, ValidateAmount("12.0"))
	assert.Error(t, ValidateAmount("+5"))
	assert.Error(t, ValidateAmount("-0"))
	assert.Error(t, ValidateAmount(" 7"))
}

func TestValidateCap(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"0", false},
		{"7", false},
		{"1000", false},
		{"1e3", true},
		{"12.0", true},
		{"+5", true},
		{"-0", true},
		{"-3", true},
		{" 7", true},
		{"7 ", true},
		{"007", true},
		{"*", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateCap(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePortion(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"80", false},
		{"80%", false},
		{"0.5%", false},
		{"100", false},
		{"1/3", false},
		{"0", true},
		{"101%", true},
		{"3/2", true},
		{"1/0", true},
		{"", true},
		{"abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidatePortion(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMeta(t *testing.T) {
	assert.NoError(t, ValidateMetaKey("type"))
	assert.Error(t, ValidateMetaKey(" "))
	assert.Error(t, ValidateMetaKey(`a"b`))
	assert.NoError(t, ValidateMetaValue(""))
	assert.Error(t, ValidateMetaValue("line\nbreak"))
}
