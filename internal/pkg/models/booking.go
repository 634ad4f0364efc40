package models

import (
	"errors"
	"time"
)

// CollectionStatus represents the sample collection state of a booking
type CollectionStatus string

const (
	CollectionScheduled  CollectionStatus = "SCHEDULED"
	CollectionInProgress CollectionStatus = "IN_PROGRESS"
	CollectionCompleted  CollectionStatus = "COMPLETED"
	CollectionCancelled  CollectionStatus = "CANCELLED"
)

// CollectionAction is an agent action that may move a booking between states
type CollectionAction string

const (
	ActionSendOTP   CollectionAction = "send_otp"
	ActionResendOTP CollectionAction = "resend_otp"
	ActionVerifyOTP CollectionAction = "verify_otp"
)

// ErrIllegalTransition is returned when an action is not allowed from the current status
var ErrIllegalTransition = errors.New("action not allowed in current collection status")

// IsTerminal reports whether no further action is accepted
func (s CollectionStatus) IsTerminal() bool {
	return s == CollectionCompleted || s == CollectionCancelled
}

// IsValid reports whether s is one of the known statuses
func (s CollectionStatus) IsValid() bool {
	switch s {
	case CollectionScheduled, CollectionInProgress, CollectionCompleted, CollectionCancelled:
		return true
	}
	return false
}

// Next returns the status a booking moves to once action succeeded upstream.
//
//	SCHEDULED   --send_otp-->   IN_PROGRESS
//	IN_PROGRESS --resend_otp--> IN_PROGRESS
//	IN_PROGRESS --verify_otp--> COMPLETED
func (s CollectionStatus) Next(action CollectionAction) (CollectionStatus, error) {
	switch {
	case s == CollectionScheduled && action == ActionSendOTP:
		return CollectionInProgress, nil
	case s == CollectionInProgress && action == ActionResendOTP:
		return CollectionInProgress, nil
	case s == CollectionInProgress && action == ActionVerifyOTP:
		return CollectionCompleted, nil
	}
	return s, ErrIllegalTransition
}

// Member is the person whose sample is collected
type Member struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Booking is a collection booking assigned to a delivery agent
type Booking struct {
	ID               string           `json:"id"`
	CollectionStatus CollectionStatus `json:"collectionStatus"`
	Member           Member           `json:"member"`
	Address          string           `json:"address"`
	CollectionDate   string           `json:"collectionDate"`
	CollectionTime   string           `json:"collectionTime"`
	Notes            string           `json:"notes,omitempty"`
	AgentID          string           `json:"agentId,omitempty"`
	UpdatedAt        time.Time        `json:"updatedAt,omitempty"`
}

// OTPSent is derived from status, the server never exposes the challenge itself
func (b *Booking) OTPSent() bool {
	return b.CollectionStatus == CollectionInProgress
}

// SendOTPRequest is the body forwarded to the OTP send endpoint
type SendOTPRequest struct {
	BookingID string `json:"bookingId"`
	Phone     string `json:"phone"`
}

// VerifyOTPRequest is the body forwarded to the OTP verify endpoint
type VerifyOTPRequest struct {
	BookingID string `json:"bookingId"`
	Phone     string `json:"phone"`
	OTP       string `json:"otp"`
}

// VerifyOTPInput is what the agent submits to the portal
type VerifyOTPInput struct {
	OTP string `json:"otp"`
}

// CollectionResult is returned to the agent after every workflow action
type CollectionResult struct {
	Booking *Booking `json:"booking"`
	OTPSent bool     `json:"otpSent"`
	Message string   `json:"message"`
}

// CollectionStatusEvent is published whenever an agent action changes a booking
type CollectionStatusEvent struct {
	BookingID  string           `json:"bookingId"`
	AgentID    string           `json:"agentId"`
	Action     CollectionAction `json:"action"`
	From       CollectionStatus `json:"from"`
	To         CollectionStatus `json:"to"`
	OccurredAt time.Time        `json:"occurredAt"`
}
