package handler

import (
	"strings"
	"time"

	"github.com/iliyamo/marina-berth-reservation/internal/repository"
)

// reservationReq is the JSON payload accepted by the reservation write
// endpoints.  Pointer fields distinguish "absent" from zero values so
// every missing field can be reported by name.
type reservationReq struct {
	CatwayNumber *int64  `json:"catwayNumber"`
	ClientName   *string `json:"clientName"`
	BoatName     *string `json:"boatName"`
	CheckIn      *string `json:"checkIn"`
	CheckOut     *string `json:"checkOut"`
}

// fieldError names a single violated constraint of the payload.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	nameMinLen = 3
	nameMaxLen = 50
)

// parseDate accepts plain dates ("2024-11-20") as well as RFC 3339
// timestamps and normalizes the result to UTC.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// validateReservation schema-checks a reservation payload and, when every
// constraint holds, returns the parsed record.  All violations are
// collected rather than stopping at the first, so the client sees the
// complete list of problems in one response.  The input is never mutated
// and no database access happens here; the overlap rule is enforced
// separately at write time.
func validateReservation(req reservationReq) (repository.Reservation, []fieldError) {
	var details []fieldError
	var res repository.Reservation

	if req.CatwayNumber == nil {
		details = append(details, fieldError{Field: "catwayNumber", Message: "catwayNumber is required"})
	} else {
		res.CatwayNumber = *req.CatwayNumber
	}

	res.ClientName, details = checkName("clientName", req.ClientName, details)
	res.BoatName, details = checkName("boatName", req.BoatName, details)

	var haveIn, haveOut bool
	if req.CheckIn == nil {
		details = append(details, fieldError{Field: "checkIn", Message: "checkIn is required"})
	} else if t, ok := parseDate(*req.CheckIn); ok {
		res.CheckIn = t
		haveIn = true
	} else {
		details = append(details, fieldError{Field: "checkIn", Message: "checkIn must be a valid date"})
	}
	if req.CheckOut == nil {
		details = append(details, fieldError{Field: "checkOut", Message: "checkOut is required"})
	} else if t, ok := parseDate(*req.CheckOut); ok {
		res.CheckOut = t
		haveOut = true
	} else {
		details = append(details, fieldError{Field: "checkOut", Message: "checkOut must be a valid date"})
	}
	if haveIn && haveOut && res.CheckOut.Before(res.CheckIn) {
		details = append(details, fieldError{Field: "checkOut", Message: "checkOut must not be before checkIn"})
	}

	if details != nil {
		return repository.Reservation{}, details
	}
	return res, nil
}

// checkName enforces the 3-50 character constraint shared by client and
// boat names.
func checkName(field string, v *string, details []fieldError) (string, []fieldError) {
	if v == nil {
		return "", append(details, fieldError{Field: field, Message: field + " is required"})
	}
	s := strings.TrimSpace(*v)
	if len(s) < nameMinLen || len(s) > nameMaxLen {
		return "", append(details, fieldError{Field: field, Message: field + " must be between 3 and 50 characters"})
	}
	return s, details
}
