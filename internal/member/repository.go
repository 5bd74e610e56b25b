package member

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const memberColumns = `id, name, phone, aadhar_number, due_date, seating_hours, fees_paid, payment_date, avatar_url, seat_number, is_seat_reserved, deleted_at, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMember(row rowScanner) (*Member, error) {
	m := &Member{}
	var deletedAt sql.NullTime
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Phone,
		&m.AadharNumber,
		&m.DueDate,
		&m.SeatingHours,
		&m.FeesPaid,
		&m.PaymentDate,
		&m.AvatarURL,
		&m.SeatNumber,
		&m.IsSeatReserved,
		&deletedAt,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		at := deletedAt.Time
		m.Deletion = Deletion{State: DeletionSoftDeleted, At: &at}
	} else {
		m.Deletion = Deletion{State: DeletionLive}
	}

	return m, nil
}

// Create inserts a new member into the database
func (r *Repository) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO members (id, name, phone, aadhar_number, due_date, seating_hours, fees_paid, payment_date, avatar_url, seat_number, is_seat_reserved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		m.ID,
		m.Name,
		m.Phone,
		m.AadharNumber,
		m.DueDate,
		m.SeatingHours,
		m.FeesPaid,
		m.PaymentDate,
		m.AvatarURL,
		m.SeatNumber,
		m.IsSeatReserved,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// GetByID retrieves a member by their ID, deleted or not
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	m, err := scanMember(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return m, nil
}

// List retrieves all live members, or all soft-deleted members when deleted
// is true, sorted by name
func (r *Repository) List(ctx context.Context, deleted bool) ([]*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE deleted_at IS NULL ORDER BY name ASC`
	if deleted {
		query = `SELECT ` + memberColumns + ` FROM members WHERE deleted_at IS NOT NULL ORDER BY name ASC`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

// Update replaces a member's mutable fields
func (r *Repository) Update(ctx context.Context, m *Member) (*Member, error) {
	query := `
		UPDATE members
		SET name = $2,
		    phone = $3,
		    aadhar_number = $4,
		    due_date = $5,
		    seating_hours = $6,
		    fees_paid = $7,
		    payment_date = $8,
		    seat_number = $9,
		    is_seat_reserved = $10
		WHERE id = $1
		RETURNING ` + memberColumns

	updated, err := scanMember(r.db.QueryRowContext(ctx, query,
		m.ID,
		m.Name,
		m.Phone,
		m.AadharNumber,
		m.DueDate,
		m.SeatingHours,
		m.FeesPaid,
		m.PaymentDate,
		m.SeatNumber,
		m.IsSeatReserved,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return updated, nil
}

// SetDeletedAt sets or clears a member's deletion timestamp
func (r *Repository) SetDeletedAt(ctx context.Context, id uuid.UUID, at *time.Time) (*Member, error) {
	query := `UPDATE members SET deleted_at = $2 WHERE id = $1 RETURNING ` + memberColumns

	m, err := scanMember(r.db.QueryRowContext(ctx, query, id, at))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set deletion timestamp: %w", err)
	}

	return m, nil
}

// Delete permanently removes a member from the database. It reports whether
// a row was removed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
