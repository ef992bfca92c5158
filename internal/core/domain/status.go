package domain

import "errors"

// RequestStatus is the state of a mentor request. Requests only move
// forward: PENDING -> APPROVED, and APPROVED is terminal.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
)

// ErrIllegalTransition is returned by Transition for any move other than
// PENDING -> APPROVED.
var ErrIllegalTransition = errors.New("illegal request status transition")

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestApproved
}

// CanTransition reports whether moving from s to next is legal.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	return s == RequestPending && next == RequestApproved
}

// Transition returns next if the move is legal, otherwise
// ErrIllegalTransition. It is total over all status pairs.
func (s RequestStatus) Transition(next RequestStatus) (RequestStatus, error) {
	if !s.CanTransition(next) {
		return s, ErrIllegalTransition
	}
	return next, nil
}
