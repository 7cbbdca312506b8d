// Package apperrors defines the engine's error taxonomy. Every operation the
// dashboard can call fails with an *Error whose Code tells the caller how to react.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeValidation marks malformed or missing input. The caller corrects and retries.
	CodeValidation Code = "VALIDATION"
	// CodeInvalidState marks an operation that is not legal in the tender's current status.
	CodeInvalidState Code = "INVALID_STATE"
	// CodeIneligibleVendor marks a business-rule rejection of the proposed winner.
	CodeIneligibleVendor Code = "INELIGIBLE_VENDOR"
	// CodeIneligiblePool marks a tender with no award-eligible bidder.
	CodeIneligiblePool Code = "INELIGIBLE_POOL"
	// CodeUnknownBidder marks a bidder id that has no bid on the tender.
	CodeUnknownBidder Code = "UNKNOWN_BIDDER"
	// CodeCollaborator marks a store, notification or publisher failure.
	CodeCollaborator Code = "COLLABORATOR"
	// CodeNotFound marks a missing tender.
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps codes to the status the dashboard API answers with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeInvalidState:
		return fiber.StatusConflict
	case CodeIneligibleVendor, CodeIneligiblePool:
		return fiber.StatusUnprocessableEntity
	case CodeUnknownBidder, CodeNotFound:
		return fiber.StatusNotFound
	case CodeCollaborator:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Code    Code
	Message string
	// Unmet lists the missing workflow steps of an ineligible vendor.
	Unmet []string
	Err   error
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Unmet) > 0 {
		msg = fmt.Sprintf("%s (unmet: %s)", msg, strings.Join(e.Unmet, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

func IneligibleVendor(vendorID string, unmet []string) *Error {
	return &Error{
		Code:    CodeIneligibleVendor,
		Message: fmt.Sprintf("vendor %s is not eligible for award", vendorID),
		Unmet:   unmet,
	}
}

func IneligiblePool(tenderID string) *Error {
	return &Error{
		Code:    CodeIneligiblePool,
		Message: fmt.Sprintf("tender %s has no award-eligible bidder", tenderID),
	}
}

func UnknownBidder(tenderID, bidderID string) *Error {
	return &Error{
		Code:    CodeUnknownBidder,
		Message: fmt.Sprintf("bidder %s has no bid on tender %s", bidderID, tenderID),
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Collaborator wraps a failure of the store, notification channel or publisher.
func Collaborator(what string, err error) *Error {
	return &Error{Code: CodeCollaborator, Message: what, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
