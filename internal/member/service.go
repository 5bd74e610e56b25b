package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidInput   = errors.New("invalid input")
)

// placeholderAvatarURL is assigned to every new member until avatar uploads exist
const placeholderAvatarURL = "https://placehold.co/40x40.png"

// Filter selects which members a listing returns
type Filter string

const (
	FilterAll          Filter = "all"
	FilterActive       Filter = "active"
	FilterExpiringSoon Filter = "expiring-soon"
	FilterExpired      Filter = "expired"
	FilterDeleted      Filter = "deleted"
)

// Store is the persistence interface the service depends on
type Store interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	List(ctx context.Context, deleted bool) ([]*Member, error)
	Update(ctx context.Context, m *Member) (*Member, error)
	SetDeletedAt(ctx context.Context, id uuid.UUID, at *time.Time) (*Member, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service handles member business logic
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a new member service with store dependency injected
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List retrieves members matching the given filter. Lifecycle filters are
// applied after classification, so the result always reflects the status a
// member has right now.
func (s *Service) List(ctx context.Context, filter Filter) ([]*Member, error) {
	if filter == "" {
		filter = FilterAll
	}

	switch filter {
	case FilterAll, FilterActive, FilterExpiringSoon, FilterExpired, FilterDeleted:
	default:
		return nil, fmt.Errorf("%w: unknown filter %q", ErrInvalidInput, filter)
	}

	members, err := s.store.List(ctx, filter == FilterDeleted)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, m := range members {
		m.Status = StatusAt(m.DueDate, now)
	}

	var want Status
	switch filter {
	case FilterActive:
		want = StatusActive
	case FilterExpiringSoon:
		want = StatusExpiringSoon
	case FilterExpired:
		want = StatusExpired
	default:
		return members, nil
	}

	filtered := make([]*Member, 0, len(members))
	for _, m := range members {
		if m.Status == want {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Create creates a new member
func (s *Service) Create(ctx context.Context, req *CreateMemberRequest) (*Member, error) {
	dueDate, paymentDate, err := validateMemberFields(req.Name, req.Phone, req.DueDate, req.SeatingHours, req.FeesPaid, req.PaymentDate)
	if err != nil {
		return nil, err
	}

	m := &Member{
		ID:             uuid.New(),
		Name:           req.Name,
		Phone:          req.Phone,
		AadharNumber:   req.AadharNumber,
		DueDate:        dueDate,
		SeatingHours:   req.SeatingHours,
		FeesPaid:       req.FeesPaid,
		PaymentDate:    paymentDate,
		AvatarURL:      placeholderAvatarURL,
		SeatNumber:     req.SeatNumber,
		IsSeatReserved: req.IsSeatReserved,
		Deletion:       Deletion{State: DeletionLive},
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}

	m.Status = StatusAt(m.DueDate, s.now())
	return m, nil
}

// Update replaces a member's mutable fields
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateMemberRequest) (*Member, error) {
	dueDate, paymentDate, err := validateMemberFields(req.Name, req.Phone, req.DueDate, req.SeatingHours, req.FeesPaid, req.PaymentDate)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, &Member{
		ID:             id,
		Name:           req.Name,
		Phone:          req.Phone,
		AadharNumber:   req.AadharNumber,
		DueDate:        dueDate,
		SeatingHours:   req.SeatingHours,
		FeesPaid:       req.FeesPaid,
		PaymentDate:    paymentDate,
		SeatNumber:     req.SeatNumber,
		IsSeatReserved: req.IsSeatReserved,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrMemberNotFound
	}

	updated.Status = StatusAt(updated.DueDate, s.now())
	return updated, nil
}

// SoftDelete marks a member as deleted. Soft-deleting an already deleted
// member keeps the original deletion timestamp.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*Member, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrMemberNotFound
	}
	if existing.Deletion.IsDeleted() {
		existing.Status = StatusAt(existing.DueDate, s.now())
		return existing, nil
	}

	at := s.now()
	m, err := s.store.SetDeletedAt(ctx, id, &at)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}

	m.Status = StatusAt(m.DueDate, s.now())
	return m, nil
}

// Restore clears a member's deletion state
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*Member, error) {
	m, err := s.store.SetDeletedAt(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}

	m.Status = StatusAt(m.DueDate, s.now())
	return m, nil
}

// HardDelete permanently removes a member
func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrMemberNotFound
	}
	return nil
}

func validateMemberFields(name, phone, dueDate string, seatingHours int, feesPaid int64, paymentDate string) (time.Time, time.Time, error) {
	var zero time.Time

	if name == "" {
		return zero, zero, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if phone == "" {
		return zero, zero, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if seatingHours <= 0 {
		return zero, zero, fmt.Errorf("%w: seating hours must be positive", ErrInvalidInput)
	}
	if feesPaid < 0 {
		return zero, zero, fmt.Errorf("%w: fees paid must not be negative", ErrInvalidInput)
	}

	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: due date must be a valid %s date", ErrInvalidInput, dateLayout)
	}
	paid, err := time.Parse(dateLayout, paymentDate)
	if err != nil {
		return zero, zero, fmt.Errorf("%w: payment date must be a valid %s date", ErrInvalidInput, dateLayout)
	}

	return due, paid, nil
}
