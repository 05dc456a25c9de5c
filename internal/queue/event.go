// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationBookedEvent is published when a reservation is successfully
// created.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type ReservationBookedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	CatwayNumber  int64  `json:"catway_number"`
	ClientName    string `json:"client_name"`
	BoatName      string `json:"boat_name"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	BookedAt      string `json:"booked_at"`
}
