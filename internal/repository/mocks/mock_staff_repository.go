package mocks

import (
	"context"

	"staffregistry/internal/model"
	"staffregistry/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, id string) (*model.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Staff], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Staff]), args.Error(1)
}

func (m *MockStaffRepository) Update(ctx context.Context, s *model.Staff) (*model.Staff, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) Search(ctx context.Context, f model.StaffSearch) (*repository.PageResult[model.Staff], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Staff]), args.Error(1)
}

func (m *MockStaffRepository) Stats(ctx context.Context) (*model.StaffCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StaffCount), args.Error(1)
}
