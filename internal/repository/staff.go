package repository

import (
	"context"

	"staffregistry/internal/model"
)

// StaffRepository defines data access for staff records using SQL queries only.
// No business logic here, only persistence.
type StaffRepository interface {
	// Create inserts a new staff row. The caller assigns ID and timestamps.
	Create(ctx context.Context, s *model.Staff) (*model.Staff, error)

	// FindByID returns a staff record by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Staff, error)

	// List returns a page of staff ordered by full name, with the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Staff], error)

	// Update overwrites every writable column of the row with s.ID.
	// It returns sql.ErrNoRows when no such row exists.
	Update(ctx context.Context, s *model.Staff) (*model.Staff, error)

	// Delete removes a staff row by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// Search returns staff matching every non-empty filter, ordered by full name.
	Search(ctx context.Context, f model.StaffSearch) (*PageResult[model.Staff], error)

	// Stats returns the total and grouped counts by designation and gender.
	Stats(ctx context.Context) (*model.StaffCount, error)
}
