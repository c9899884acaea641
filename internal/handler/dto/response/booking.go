package response

import "donor-booking/internal/usecase/booking"

// Envelope is written for every API response.
type Envelope = booking.Envelope

type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type CacheCleared struct {
	Message string `json:"message"`
}

type QuotasUpdated struct {
	Message string `json:"message"`
}

type ResetDone struct {
	Message string                  `json:"message"`
	Dates   *booking.AvailableDates `json:"dates,omitempty"`
}

type TestResult struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}
