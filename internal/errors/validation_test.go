package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greyvale/sheet-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	vb := errors.NewValidationBuilder()
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestBuilderCollectsFields() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("sheetID")
	vb.InvalidField("quantity", "must not be zero")

	err := vb.Build()
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "sheetID")
	s.Contains(fields, "quantity")
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"present", "sheet_123", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("sheetID", tc.value, vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidatePositive() {
	testCases := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"positive", 3, false},
		{"zero", 0, true},
		{"negative", -2, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidatePositive("quantity", tc.value, vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
