package handler

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }
func intptr(n int64) *int64   { return &n }

func validReq() reservationReq {
	return reservationReq{
		CatwayNumber: intptr(1),
		ClientName:   strptr("John Doe"),
		BoatName:     strptr("Sea Breeze"),
		CheckIn:      strptr("2024-11-20"),
		CheckOut:     strptr("2024-11-25"),
	}
}

func TestValidateReservationValid(t *testing.T) {
	res, details := validateReservation(validReq())
	if details != nil {
		t.Fatalf("unexpected violations: %+v", details)
	}
	if res.CatwayNumber != 1 || res.ClientName != "John Doe" || res.BoatName != "Sea Breeze" {
		t.Errorf("parsed record mismatch: %+v", res)
	}
	wantIn := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	if !res.CheckIn.Equal(wantIn) {
		t.Errorf("checkIn = %v, want %v", res.CheckIn, wantIn)
	}
}

func TestValidateReservationAcceptsRFC3339(t *testing.T) {
	req := validReq()
	req.CheckIn = strptr("2024-11-20T00:00:00Z")
	if _, details := validateReservation(req); details != nil {
		t.Fatalf("RFC3339 date rejected: %+v", details)
	}
}

func TestValidateReservationMissingFields(t *testing.T) {
	_, details := validateReservation(reservationReq{})
	if len(details) != 5 {
		t.Fatalf("want 5 violations for empty payload, got %d: %+v", len(details), details)
	}
	seen := map[string]bool{}
	for _, d := range details {
		seen[d.Field] = true
	}
	for _, f := range []string{"catwayNumber", "clientName", "boatName", "checkIn", "checkOut"} {
		if !seen[f] {
			t.Errorf("missing violation for field %q", f)
		}
	}
}

func TestValidateReservationNameLength(t *testing.T) {
	req := validReq()
	req.ClientName = strptr("Jo") // below the 3 character minimum
	if _, details := validateReservation(req); len(details) != 1 || details[0].Field != "clientName" {
		t.Errorf("want single clientName violation, got %+v", details)
	}

	req = validReq()
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}
	req.BoatName = strptr(string(long))
	if _, details := validateReservation(req); len(details) != 1 || details[0].Field != "boatName" {
		t.Errorf("want single boatName violation, got %+v", details)
	}
}

func TestValidateReservationCheckOutBeforeCheckIn(t *testing.T) {
	req := validReq()
	req.CheckIn = strptr("2024-11-25")
	req.CheckOut = strptr("2024-11-20")
	_, details := validateReservation(req)
	if len(details) != 1 || details[0].Field != "checkOut" {
		t.Fatalf("want single checkOut violation, got %+v", details)
	}
}

func TestValidateReservationSameDayStay(t *testing.T) {
	// checkOut equal to checkIn satisfies checkOut >= checkIn.
	req := validReq()
	req.CheckOut = strptr("2024-11-20")
	if _, details := validateReservation(req); details != nil {
		t.Errorf("same-day stay rejected: %+v", details)
	}
}

func TestValidateReservationBadDate(t *testing.T) {
	req := validReq()
	req.CheckIn = strptr("not-a-date")
	_, details := validateReservation(req)
	if len(details) != 1 || details[0].Field != "checkIn" {
		t.Fatalf("want single checkIn violation, got %+v", details)
	}
}
