package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"staffregistry/internal/database"
	"staffregistry/internal/model"
	"staffregistry/internal/nic"
	"staffregistry/internal/repository"
	"staffregistry/internal/storage"
)

var (
	ErrIDRequired            = errors.New("id is required")
	ErrNotFound              = errors.New("staff not found")
	ErrReaderNil             = errors.New("reader is nil")
	ErrDuplicateAppointment  = errors.New("appointment number already exists")
	ErrGenderMismatch        = errors.New("gender does not match NIC")
	ErrBirthDateUnresolvable = errors.New("date of birth cannot be derived from NIC")
	ErrBirthDateMismatch     = errors.New("date of birth does not match NIC")
	ErrNoPhoto               = errors.New("staff has no photo")
	ErrPhotoTooLarge         = errors.New("photo exceeds size limit")
	ErrUnsupportedPhoto      = errors.New("photo must be an image")
)

const photoPrefix = "staff-photos"

// StaffListResult is the service-level DTO for paginated staff.
type StaffListResult struct {
	Items []model.Staff `json:"data"`
	Total int           `json:"total"`
}

// StaffService defines the use cases for handling staff records.
type StaffService interface {
	// Create validates in, normalizes its NIC, derives missing fields and stores the record.
	Create(ctx context.Context, in model.StaffInput) (*model.Staff, error)
	// Get returns a single staff record by its ID.
	Get(ctx context.Context, id string) (*model.Staff, error)
	// List returns staff using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*StaffListResult, error)
	// Update replaces the writable fields of an existing record.
	Update(ctx context.Context, id string, in model.StaffInput) (*model.Staff, error)
	// Delete removes a staff record and its photo.
	Delete(ctx context.Context, id string) error
	// Search filters staff records.
	Search(ctx context.Context, f model.StaffSearch) (*StaffListResult, error)
	// Stats returns grouped counts over all staff.
	Stats(ctx context.Context) (*model.StaffCount, error)
	// UploadPhoto stores a photograph and links it to the staff record.
	UploadPhoto(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Staff, error)
	// PhotoURL returns a time-limited download URL for the staff photo.
	PhotoURL(ctx context.Context, id string) (string, error)
	// OpenPhoto streams the staff photo. The caller closes the reader.
	OpenPhoto(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)
	// LookupNIC derives birth year, day of year and sex from a raw NIC.
	LookupNIC(raw string) (nic.Info, error)
}

// Options tune staff rules. Zero values fall back to defaults.
type Options struct {
	RetirementAge  int
	PhotoURLExpiry time.Duration
	PhotoMaxBytes  int64
	Now            func() time.Time
}

func (o Options) withDefaults() Options {
	if o.RetirementAge <= 0 {
		o.RetirementAge = 60
	}
	if o.PhotoURLExpiry <= 0 {
		o.PhotoURLExpiry = 15 * time.Minute
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// staffService is a concrete implementation of StaffService.
type staffService struct {
	store  storage.Storage
	repo   repository.StaffRepository
	opts   Options
	tracer trace.Tracer
}

// NewStaffService constructs a new StaffService.
func NewStaffService(store storage.Storage, repo repository.StaffRepository, opts Options) StaffService {
	return &staffService{
		store:  store,
		repo:   repo,
		opts:   opts.withDefaults(),
		tracer: otel.Tracer("staffregistry/internal/service"),
	}
}

func (s *staffService) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "StaffService."+name)
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *staffService) Create(ctx context.Context, in model.StaffInput) (_ *model.Staff, err error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer func() { finishSpan(span, err) }()

	st, err := s.prepare(in)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now().UTC()
	st.ID = uuid.New().String()
	st.CreatedAt = now
	st.UpdatedAt = now

	stored, err := s.repo.Create(ctx, st)
	if err != nil {
		if database.IsUniqueViolation(err, "") {
			return nil, ErrDuplicateAppointment
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *staffService) Get(ctx context.Context, id string) (_ *model.Staff, err error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer func() { finishSpan(span, err) }()

	return s.find(ctx, id)
}

// List returns paginated staff without exposing repository types.
func (s *staffService) List(ctx context.Context, limit, offset int) (_ *StaffListResult, err error) {
	ctx, span := s.startSpan(ctx, "List")
	defer func() { finishSpan(span, err) }()

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &StaffListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *staffService) Update(ctx context.Context, id string, in model.StaffInput) (_ *model.Staff, err error) {
	ctx, span := s.startSpan(ctx, "Update")
	defer func() { finishSpan(span, err) }()

	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	st.ID = existing.ID
	st.ImagePath = existing.ImagePath
	st.CreatedAt = existing.CreatedAt
	st.UpdatedAt = s.opts.Now().UTC()

	return s.save(ctx, st)
}

// Delete removes the photo from storage, then deletes the record.
func (s *staffService) Delete(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "Delete")
	defer func() { finishSpan(span, err) }()

	st, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Keep the row if the object cannot be removed so the reference is not lost.
	if st.ImagePath != "" {
		if err := s.store.Delete(ctx, st.ImagePath); err != nil {
			return fmt.Errorf("delete photo: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}

// Search runs f against the repository. A NIC filter that normalizes is
// searched in canonical form; otherwise the cleaned partial text is used.
func (s *staffService) Search(ctx context.Context, f model.StaffSearch) (_ *StaffListResult, err error) {
	ctx, span := s.startSpan(ctx, "Search")
	defer func() { finishSpan(span, err) }()

	f.Query = strings.TrimSpace(f.Query)
	if f.NICNumber != "" {
		if canonical, nerr := nic.Normalize(f.NICNumber); nerr == nil {
			f.NICNumber = canonical
		} else {
			f.NICNumber = strings.ToUpper(strings.ReplaceAll(f.NICNumber, " ", ""))
		}
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	res, err := s.repo.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	return &StaffListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *staffService) Stats(ctx context.Context) (_ *model.StaffCount, err error) {
	ctx, span := s.startSpan(ctx, "Stats")
	defer func() { finishSpan(span, err) }()

	return s.repo.Stats(ctx)
}

// UploadPhoto uploads the photo, points the record at it, and removes the new
// object again if the record cannot be updated. The previous photo is removed last.
func (s *staffService) UploadPhoto(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (_ *model.Staff, err error) {
	ctx, span := s.startSpan(ctx, "UploadPhoto")
	defer func() { finishSpan(span, err) }()

	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedPhoto
	}
	if s.opts.PhotoMaxBytes > 0 && size > s.opts.PhotoMaxBytes {
		return nil, ErrPhotoTooLarge
	}

	st, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := st.ImagePath

	key := filepath.ToSlash(filepath.Join(photoPrefix, uuid.New().String()+strings.ToLower(filepath.Ext(originalFilename))))
	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
			"staff-id":          st.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	st.ImagePath = objInfo.Key
	st.UpdatedAt = s.opts.Now().UTC()
	stored, err := s.save(ctx, st)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, objInfo.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, err
	}

	if previous != "" && previous != objInfo.Key {
		_ = s.store.Delete(ctx, previous) // best effort
	}
	return stored, nil
}

func (s *staffService) PhotoURL(ctx context.Context, id string) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "PhotoURL")
	defer func() { finishSpan(span, err) }()

	st, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	if st.ImagePath == "" {
		return "", ErrNoPhoto
	}
	return s.store.PresignGet(ctx, st.ImagePath, s.opts.PhotoURLExpiry)
}

func (s *staffService) OpenPhoto(ctx context.Context, id string) (_ io.ReadCloser, _ storage.ObjectInfo, err error) {
	ctx, span := s.startSpan(ctx, "OpenPhoto")
	defer func() { finishSpan(span, err) }()

	st, err := s.find(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if st.ImagePath == "" {
		return nil, storage.ObjectInfo{}, ErrNoPhoto
	}
	rc, info, err := s.store.Get(ctx, st.ImagePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrNoPhoto
		}
		return nil, storage.ObjectInfo{}, err
	}
	return rc, info, nil
}

func (s *staffService) LookupNIC(raw string) (nic.Info, error) {
	return nic.Derive(raw)
}

func (s *staffService) find(ctx context.Context, id string) (*model.Staff, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *staffService) save(ctx context.Context, st *model.Staff) (*model.Staff, error) {
	stored, err := s.repo.Update(ctx, st)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case database.IsUniqueViolation(err, ""):
			return nil, ErrDuplicateAppointment
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}
