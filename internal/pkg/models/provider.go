package models

import (
	"errors"
	"time"
)

// PrescriptionStatus tracks a prescription routed to a lab
type PrescriptionStatus string

const (
	PrescriptionAssigned        PrescriptionStatus = "ASSIGNED"
	PrescriptionInProgress      PrescriptionStatus = "IN_PROGRESS"
	PrescriptionReturnedToAdmin PrescriptionStatus = "RETURNED_TO_ADMIN"
	PrescriptionRejected        PrescriptionStatus = "REJECTED"
)

// ErrIllegalPrescriptionTransition is returned for a status change outside the lifecycle
var ErrIllegalPrescriptionTransition = errors.New("prescription status change not allowed")

var prescriptionTransitions = map[PrescriptionStatus][]PrescriptionStatus{
	PrescriptionAssigned:   {PrescriptionInProgress, PrescriptionRejected},
	PrescriptionInProgress: {PrescriptionReturnedToAdmin, PrescriptionRejected},
}

// CanMoveTo reports whether a lab may move a prescription from s to next
func (s PrescriptionStatus) CanMoveTo(next PrescriptionStatus) bool {
	for _, allowed := range prescriptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Prescription is an uploaded document a lab fulfils
type Prescription struct {
	ID          string             `json:"_id"`
	PatientName string             `json:"patientName"`
	FileURL     string             `json:"fileUrl"`
	Status      PrescriptionStatus `json:"status"`
	ProviderID  string             `json:"providerId"`
	Notes       string             `json:"notes,omitempty"`
	ReportURL   string             `json:"reportUrl,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty"`
}

// PrescriptionStatusUpdate is submitted by a lab to move a prescription
type PrescriptionStatusUpdate struct {
	Status    PrescriptionStatus `json:"status"`
	Notes     string             `json:"notes,omitempty"`
	ReportURL string             `json:"reportUrl,omitempty"`
}

// BankDetails is where payouts are settled
type BankDetails struct {
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	UPI           string `json:"upi,omitempty"`
}

// ServiceProvider is a lab profile
type ServiceProvider struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address,omitempty"`
	CoinBalance int64       `json:"coins"`
	BankDetails BankDetails `json:"bankDetails"`
}

// ProfileUpdate is the subset of the profile a lab may edit
type ProfileUpdate struct {
	Name        string      `json:"name,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Address     string      `json:"address,omitempty"`
	BankDetails BankDetails `json:"bankDetails"`
}

// PayoutRequest is a coin withdrawal submitted by a lab
type PayoutRequest struct {
	ProviderID string `json:"providerId"`
	Coins      int64  `json:"coins"`
	Note       string `json:"note,omitempty"`
}

// Payout is a recorded withdrawal, settled by an admin out of band
type Payout struct {
	ID          string    `json:"_id"`
	ProviderID  string    `json:"providerId"`
	Coins       int64     `json:"coins"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requestedAt"`
}
