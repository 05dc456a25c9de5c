package repository

import (
	"context"
	"database/sql"
	"time"
)

// Reservation mirrors the 'reservations' table.  Check-in and check-out
// bound a half-open stay [CheckIn, CheckOut); two reservations on the
// same catway must never intersect.
type Reservation struct {
	ID           uint64    `json:"-"`
	CatwayNumber int64     `json:"catwayNumber"`
	ClientName   string    `json:"clientName"`
	BoatName     string    `json:"boatName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
}

type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// hasConflictTx scans the catway's reservations under row locks and
// reports whether any stored stay overlaps the candidate interval.
// excludeID skips the row being updated; pass 0 on create.  Running
// inside the caller's transaction makes check-then-write atomic: a
// concurrent booking for the same catway blocks on the locks until this
// transaction commits.
func hasConflictTx(ctx context.Context, tx *sql.Tx, catwayNumber int64, checkIn, checkOut time.Time, excludeID uint64) (bool, error) {
	const q = `SELECT id, check_in, check_out FROM reservations WHERE catway_number=? FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, catwayNumber)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uint64
		var in, out time.Time
		if err := rows.Scan(&id, &in, &out); err != nil {
			return false, err
		}
		if id == excludeID {
			continue
		}
		if overlaps(checkIn, checkOut, in, out) {
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return false, nil
}

// Create inserts a reservation after verifying, in the same transaction,
// that no existing reservation on the catway overlaps it.  ErrConflict is
// returned when the interval is taken.
func (r *ReservationRepo) Create(ctx context.Context, res *Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	conflict, err := hasConflictTx(ctx, tx, res.CatwayNumber, res.CheckIn, res.CheckOut, 0)
	if err != nil {
		return err
	}
	if conflict {
		return ErrConflict
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO reservations (catway_number, client_name, boat_name, check_in, check_out) VALUES (?,?,?,?,?)",
		res.CatwayNumber, res.ClientName, res.BoatName, res.CheckIn, res.CheckOut)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	return tx.Commit()
}

// GetByCatwayNumber fetches the reservation stored for a catway.
func (r *ReservationRepo) GetByCatwayNumber(ctx context.Context, number int64) (Reservation, error) {
	var res Reservation
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,catway_number,client_name,boat_name,check_in,check_out FROM reservations WHERE catway_number=? LIMIT 1",
		number).Scan(&res.ID, &res.CatwayNumber, &res.ClientName, &res.BoatName, &res.CheckIn, &res.CheckOut)
	return res, err
}

// List returns all reservations ordered by catway number, then check-in.
func (r *ReservationRepo) List(ctx context.Context) ([]Reservation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,catway_number,client_name,boat_name,check_in,check_out FROM reservations ORDER BY catway_number, check_in")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reservations := make([]Reservation, 0)
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.CatwayNumber, &res.ClientName, &res.BoatName, &res.CheckIn, &res.CheckOut); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateByCatwayNumber replaces the reservation stored under the given
// catway number.  The row being updated is located inside the
// transaction and excluded by its primary key from the overlap scan, so
// a stay can be shortened or shifted without colliding with itself.
// sql.ErrNoRows is returned when the catway has no reservation and
// ErrConflict when the new interval overlaps another booking.
func (r *ReservationRepo) UpdateByCatwayNumber(ctx context.Context, number int64, res *Reservation) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var currentID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM reservations WHERE catway_number=? LIMIT 1 FOR UPDATE", number).
		Scan(&currentID)
	if err != nil {
		return err
	}

	conflict, err := hasConflictTx(ctx, tx, res.CatwayNumber, res.CheckIn, res.CheckOut, currentID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrConflict
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE reservations SET catway_number=?, client_name=?, boat_name=?, check_in=?, check_out=? WHERE id=?",
		res.CatwayNumber, res.ClientName, res.BoatName, res.CheckIn, res.CheckOut, currentID)
	if err != nil {
		return err
	}
	res.ID = currentID
	return tx.Commit()
}

// DeleteByCatwayNumber removes the reservation stored for a catway.
func (r *ReservationRepo) DeleteByCatwayNumber(ctx context.Context, number int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE catway_number=?", number)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
