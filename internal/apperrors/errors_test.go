package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeValidation, 400},
		{CodeInvalidState, 409},
		{CodeIneligibleVendor, 422},
		{CodeIneligiblePool, 422},
		{CodeUnknownBidder, 404},
		{CodeNotFound, 404},
		{CodeCollaborator, 502},
		{Code("SOMETHING_ELSE"), 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			check.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("award: %w", InvalidState("tender is %s", "awarded"))

	check.Equal(t, CodeInvalidState, CodeOf(err))
	check.True(t, Is(err, CodeInvalidState))
	check.False(t, Is(err, CodeValidation))
	check.Equal(t, Code(""), CodeOf(errors.New("plain")))
	check.False(t, Is(nil, CodeInvalidState))
}

func TestIneligibleVendorMessage(t *testing.T) {
	err := IneligibleVendor("v-1", []string{"noc", "final_approval"})

	check.Equal(t, "vendor v-1 is not eligible for award (unmet: noc, final_approval)", err.Error())
	check.Equal(t, []string{"noc", "final_approval"}, err.Unmet)
}

func TestCollaboratorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := Collaborator("failed to send notification", cause)

	check.True(t, errors.Is(err, cause))
	check.Equal(t, "failed to send notification: connection refused", err.Error())
}
