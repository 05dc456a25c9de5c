package repository

import (
	"context"
	"database/sql"
	"strings"
)

// Catway mirrors the 'catways' table.  The catway number is the public
// identifier used by every lookup; the surrogate id stays internal.
type Catway struct {
	ID           uint64 `json:"-"`
	CatwayNumber int64  `json:"catwayNumber"`
	Type         string `json:"type"`
	CatwayState  string `json:"catwayState"`
}

// CatwayUpdate carries the optional fields of a partial update.  Nil
// pointers leave the stored value untouched.
type CatwayUpdate struct {
	Type        *string
	CatwayState *string
}

type CatwayRepo struct{ DB *sql.DB }

func NewCatwayRepo(db *sql.DB) *CatwayRepo { return &CatwayRepo{DB: db} }

// Create inserts a new catway.  Duplicate numbers map to ErrCatwayExists.
func (r *CatwayRepo) Create(ctx context.Context, cw *Catway) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO catways (catway_number, type, catway_state) VALUES (?,?,?)",
		cw.CatwayNumber, cw.Type, cw.CatwayState)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrCatwayExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cw.ID = uint64(id)
	return nil
}

// GetByNumber fetches a catway by its number.
func (r *CatwayRepo) GetByNumber(ctx context.Context, number int64) (Catway, error) {
	var cw Catway
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,catway_number,type,catway_state FROM catways WHERE catway_number=? LIMIT 1",
		number).Scan(&cw.ID, &cw.CatwayNumber, &cw.Type, &cw.CatwayState)
	return cw, err
}

// List returns all catways ordered by number.
func (r *CatwayRepo) List(ctx context.Context) ([]Catway, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,catway_number,type,catway_state FROM catways ORDER BY catway_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	catways := make([]Catway, 0)
	for rows.Next() {
		var cw Catway
		if err := rows.Scan(&cw.ID, &cw.CatwayNumber, &cw.Type, &cw.CatwayState); err != nil {
			return nil, err
		}
		catways = append(catways, cw)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catways, nil
}

// UpdateByNumber applies a partial update and returns the updated row.
// COALESCE keeps the stored value for any field the caller left nil,
// matching the partial-replace contract of PUT /catways/:catwayNumber.
func (r *CatwayRepo) UpdateByNumber(ctx context.Context, number int64, upd CatwayUpdate) (Catway, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catways SET type=COALESCE(?,type), catway_state=COALESCE(?,catway_state) WHERE catway_number=?",
		upd.Type, upd.CatwayState, number)
	if err != nil {
		return Catway{}, err
	}
	// RowsAffected is 0 both for a missing row and for a no-op update, so
	// existence is decided by the read-back instead.
	return r.GetByNumber(ctx, number)
}

// DeleteByNumber removes a catway.  sql.ErrNoRows is returned when no
// catway carries the given number.
func (r *CatwayRepo) DeleteByNumber(ctx context.Context, number int64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM catways WHERE catway_number=?", number)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
