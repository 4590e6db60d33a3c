package mocks

import (
	"context"
	"io"

	"staffregistry/internal/model"
	"staffregistry/internal/nic"
	"staffregistry/internal/service"
	"staffregistry/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStaffService struct {
	mock.Mock
}

var _ service.StaffService = (*MockStaffService)(nil)

func (m *MockStaffService) Create(ctx context.Context, in model.StaffInput) (*model.Staff, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Get(ctx context.Context, id string) (*model.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) List(ctx context.Context, limit, offset int) (*service.StaffListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StaffListResult), args.Error(1)
}

func (m *MockStaffService) Update(ctx context.Context, id string, in model.StaffInput) (*model.Staff, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffService) Search(ctx context.Context, f model.StaffSearch) (*service.StaffListResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StaffListResult), args.Error(1)
}

func (m *MockStaffService) Stats(ctx context.Context) (*model.StaffCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StaffCount), args.Error(1)
}

func (m *MockStaffService) UploadPhoto(ctx context.Context, id string, r io.Reader, originalFilename, contentType string, size int64) (*model.Staff, error) {
	args := m.Called(ctx, id, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) PhotoURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockStaffService) OpenPhoto(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockStaffService) LookupNIC(raw string) (nic.Info, error) {
	args := m.Called(raw)
	return args.Get(0).(nic.Info), args.Error(1)
}
