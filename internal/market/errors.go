package market

import (
	"errors"
	"fmt"
)

// Reason classifies why an operation was rejected.
type Reason string

const (
	ReasonDocumentNotFound Reason = "DOCUMENT_NOT_FOUND"
	ReasonUserNotFound     Reason = "USER_NOT_FOUND"
	ReasonRoleNotAllowed   Reason = "ROLE_NOT_ALLOWED"
	ReasonNotPurchased     Reason = "NOT_PURCHASED"
	ReasonAlreadyReviewed  Reason = "ALREADY_REVIEWED"
	ReasonSelfPurchase     Reason = "SELF_PURCHASE"
	ReasonInvalidRating    Reason = "INVALID_RATING"
)

// Sentinel errors, matchable with errors.Is on any *Error.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRoleNotAllowed   = errors.New("role not allowed")
	ErrNotPurchased     = errors.New("document not purchased")
	ErrAlreadyReviewed  = errors.New("document already reviewed")
	ErrSelfPurchase     = errors.New("cannot purchase own document")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

var reasonErrors = map[Reason]error{
	ReasonDocumentNotFound: ErrDocumentNotFound,
	ReasonUserNotFound:     ErrUserNotFound,
	ReasonRoleNotAllowed:   ErrRoleNotAllowed,
	ReasonNotPurchased:     ErrNotPurchased,
	ReasonAlreadyReviewed:  ErrAlreadyReviewed,
	ReasonSelfPurchase:     ErrSelfPurchase,
	ReasonInvalidRating:    ErrInvalidRating,
}

// Error is returned for every rejected operation.
type Error struct {
	Op      string
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Reason, e.Message)
}

func (e *Error) Unwrap() error {
	return reasonErrors[e.Reason]
}

// ReasonOf extracts the rejection reason, or "" when err is not an *Error.
func ReasonOf(err error) Reason {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
