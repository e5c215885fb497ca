package handlers

import (
	"context"
	"errors"

	"github.com/hongminglow/eletronicos-be/internal/models"
	"github.com/hongminglow/eletronicos-be/internal/storage"
)

var errDiskIO = errors.New("disk I/O error")

// stubStore returns canned results and counts calls.
type stubStore struct {
	findErr   error
	createErr error
	err       error
	calls     int
}

var _ storage.Store = (*stubStore)(nil)

func (s *stubStore) CreateUser(context.Context, models.User) (models.User, error) {
	s.calls++
	return models.User{}, s.createErr
}

func (s *stubStore) FindByUsername(context.Context, string) (models.User, error) {
	s.calls++
	return models.User{}, s.findErr
}

func (s *stubStore) CreateAppliance(context.Context, models.Appliance) (models.Appliance, error) {
	s.calls++
	return models.Appliance{}, s.err
}

func (s *stubStore) ListAppliances(context.Context) ([]models.Appliance, error) {
	s.calls++
	return nil, s.err
}

func (s *stubStore) GetAppliance(context.Context, int64) (models.Appliance, error) {
	s.calls++
	return models.Appliance{}, s.err
}

func (s *stubStore) UpdateAppliance(context.Context, int64, models.Appliance) error {
	s.calls++
	return s.err
}

func (s *stubStore) DeleteAppliance(context.Context, int64) error {
	s.calls++
	return s.err
}

func (s *stubStore) Ping(context.Context) error { return s.err }

func (s *stubStore) Close() error { return nil }
