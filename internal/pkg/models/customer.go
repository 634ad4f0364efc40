package models

import "time"

// CustomerBooking is a booking as seen by the customer who placed it
type CustomerBooking struct {
	ID          string        `json:"_id"`
	Items       []CatalogItem `json:"items,omitempty"`
	Status      string        `json:"status"`
	ReportURL   string        `json:"reportUrl,omitempty"`
	ScheduledAt time.Time     `json:"scheduledAt,omitempty"`
	TotalAmount float64       `json:"totalAmount,omitempty"`
}

// HasReport reports whether a lab report has been attached
func (b *CustomerBooking) HasReport() bool {
	return b.ReportURL != ""
}

// DoctorConsultation is a request to book a doctor
type DoctorConsultation struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Speciality    string `json:"speciality,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	Message       string `json:"message,omitempty"`
}

// EnquiryKind selects the enquiry endpoint
type EnquiryKind string

const (
	EnquiryDoctor   EnquiryKind = "doctor"
	EnquiryHospital EnquiryKind = "hospital"
)

// Enquiry is a partnership enquiry from a doctor or hospital
type Enquiry struct {
	Kind         EnquiryKind `json:"-"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	Organisation string      `json:"organisation,omitempty"`
	Message      string      `json:"message,omitempty"`
}
