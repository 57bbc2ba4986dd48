// Domain error taxonomy. Every failure kind is a distinct sentinel so
// callers can branch with errors.Is; the presentation layer decides how to
// display them.
package services

import "errors"

var (
	// ErrUsernameTaken is returned when registering or renaming to a
	// username that already exists.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrWeakPassword is returned when a user password is shorter than the
	// minimum length.
	ErrWeakPassword = errors.New("password must be at least 4 characters")

	// ErrConfirmationMismatch is returned when a new password and its
	// confirmation differ.
	ErrConfirmationMismatch = errors.New("new password and confirmation do not match")

	// ErrPasswordMismatch is returned when the old password given to a
	// password change is wrong.
	ErrPasswordMismatch = errors.New("old password does not match")

	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not reveal whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidDate is returned when a date or time string does not parse
	// in the expected format.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidAccountPassword is returned when a bank account password is
	// malformed at creation or wrong at withdrawal.
	ErrInvalidAccountPassword = errors.New("invalid account password")

	// ErrInvalidCVV2 is returned when the CVV2 does not match.
	ErrInvalidCVV2 = errors.New("cvv2 is incorrect")

	// ErrInvalidAmount is returned for non-positive deposit amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal, purchase, or
	// subscription exceeds the available funds or breaches the reserve.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidChoice is returned for an unrecognized subscription choice.
	ErrInvalidChoice = errors.New("invalid subscription choice")

	// ErrAccessDenied is returned when a non-admin attempts an admin action.
	ErrAccessDenied = errors.New("access denied")

	// ErrAccountNotFound is returned when no bank account matches the given
	// account number.
	ErrAccountNotFound = errors.New("bank account not found")

	// ErrShowingNotFound is returned when no showing matches the given id.
	ErrShowingNotFound = errors.New("showing not found")

	// ErrShowingFull is returned when reserving a seat on a showing with no
	// seats left.
	ErrShowingFull = errors.New("no seats left for this showing")

	// ErrTransferNotSupported is returned by the unimplemented bank-to-bank
	// transfer.
	ErrTransferNotSupported = errors.New("bank transfers are not supported")
)
