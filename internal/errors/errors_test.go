package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/greyvale/sheet-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "sheet not found",
			expected: "NOT_FOUND: sheet not found",
		},
		{
			name:     "insufficient quantity error",
			code:     errors.CodeInsufficientQuantity,
			message:  "have 2, need 5",
			expected: "INSUFFICIENT_QUANTITY: have 2, need 5",
		},
		{
			name:     "slot occupied error",
			code:     errors.CodeSlotOccupied,
			message:  "slot utility0 holds a different item",
			expected: "SLOT_OCCUPIED: slot utility0 holds a different item",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	cause := fmt.Errorf("connection refused")
	err := errors.Wrap(cause, "failed to load sheet")

	s.Equal(errors.CodeInternal, err.Code)
	s.Contains(err.Error(), "failed to load sheet")
	s.Contains(err.Error(), "connection refused")
	s.Equal(cause, err.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.RecipeUnknown("recipe not held")
	err := errors.Wrap(inner, "craft failed")

	s.Equal(errors.CodeRecipeUnknown, err.Code)
	s.True(errors.IsRecipeUnknown(err))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "nothing"))
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.InsufficientComponents("missing components").
		WithMeta("missing", []string{"ironOre"}).
		WithMeta("recipe_id", "recipe_dagger")

	meta := errors.GetMeta(err)
	s.Equal([]string{"ironOre"}, meta["missing"])
	s.Equal("recipe_dagger", meta["recipe_id"])
}

func (s *ErrorsTestSuite) TestIsComparesByCode() {
	a := errors.InsufficientQuantity("have 1, need 3")
	b := errors.InsufficientQuantity("have 0, need 1")
	c := errors.SlotOccupied("occupied")

	s.True(errors.Is(a, b))
	s.False(errors.Is(a, c))
}

func (s *ErrorsTestSuite) TestTypeCheckHelpers() {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", errors.NotFound("x"), errors.IsNotFound},
		{"invalid argument", errors.InvalidArgument("x"), errors.IsInvalidArgument},
		{"already exists", errors.AlreadyExists("x"), errors.IsAlreadyExists},
		{"insufficient quantity", errors.InsufficientQuantity("x"), errors.IsInsufficientQuantity},
		{"slot occupied", errors.SlotOccupied("x"), errors.IsSlotOccupied},
		{"recipe unknown", errors.RecipeUnknown("x"), errors.IsRecipeUnknown},
		{"insufficient components", errors.InsufficientComponents("x"), errors.IsInsufficientComponents},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.True(tc.check(tc.err))
			s.False(tc.check(errors.Internal("other")))
		})
	}
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeSlotOccupied, errors.GetCode(errors.SlotOccupied("x")))
}

func (s *ErrorsTestSuite) TestHTTPStatusMapping() {
	testCases := []struct {
		code   errors.Code
		status int
	}{
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeInsufficientQuantity, http.StatusConflict},
		{errors.CodeInsufficientComponents, http.StatusConflict},
		{errors.CodeSlotOccupied, http.StatusConflict},
		{errors.CodeRecipeUnknown, http.StatusPreconditionFailed},
		{errors.CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.status, tc.code.HTTPStatus())
		})
	}
}
