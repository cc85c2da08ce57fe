package pin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/decklist-exporter/internal/storage"
	"github.com/mcoot/decklist-exporter/internal/storage/memory"
	"github.com/mcoot/decklist-exporter/internal/testutil"
)

type failingStore struct{}

func (failingStore) LoadPin(context.Context) (string, error) { return "", errors.New("disk on fire") }
func (failingStore) SavePin(context.Context, string) error   { return errors.New("disk on fire") }

var _ storage.PinStore = failingStore{}

type ServiceSuite struct {
	suite.Suite
	store   *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = memory.New()
	s.service = New(s.store, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestEnterCompletePinSavesToken() {
	entry, err := s.service.Enter(s.ctx, "12345678")
	s.Require().NoError(err)

	s.True(entry.Saved)
	s.Equal("MTIzNDo1Njc4", entry.Token)
	s.Equal(0, entry.Remaining)

	stored, err := s.store.LoadPin(s.ctx)
	s.Require().NoError(err)
	s.Equal("MTIzNDo1Njc4", stored)
}

func (s *ServiceSuite) TestEnterStripsAndCapsInput() {
	entry, err := s.service.Enter(s.ctx, "1234-5678-9")
	s.Require().NoError(err)

	s.Equal("12345678", entry.PIN)
	s.True(entry.Saved)
}

func (s *ServiceSuite) TestEnterIncompletePinDoesNotTouchStore() {
	entry, err := s.service.Enter(s.ctx, "12a34")
	s.Require().NoError(err)

	s.False(entry.Saved)
	s.Empty(entry.Token)
	s.Equal("1234", entry.PIN)
	s.Equal(4, entry.Remaining)

	_, err = s.store.LoadPin(s.ctx)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *ServiceSuite) TestEnterIncompleteKeepsPreviousToken() {
	_, err := s.service.Enter(s.ctx, "11112222")
	s.Require().NoError(err)

	_, err = s.service.Enter(s.ctx, "333")
	s.Require().NoError(err)

	stored, err := s.service.Stored(s.ctx)
	s.Require().NoError(err)
	s.Equal("MTExMToyMjIy", stored)
}

func (s *ServiceSuite) TestEnterOverwritesPreviousToken() {
	_, _ = s.service.Enter(s.ctx, "11112222")
	_, _ = s.service.Enter(s.ctx, "12345678")

	stored, err := s.service.Stored(s.ctx)
	s.Require().NoError(err)
	s.Equal("MTIzNDo1Njc4", stored)
}

func (s *ServiceSuite) TestStoredEmptyWhenNothingSaved() {
	stored, err := s.service.Stored(s.ctx)
	s.Require().NoError(err)
	s.Empty(stored)
}

func (s *ServiceSuite) TestStoreFailuresSurface() {
	service := New(failingStore{}, testutil.NopLogger())

	entry, err := service.Enter(s.ctx, "12345678")
	s.Error(err)
	s.False(entry.Saved)

	_, err = service.Stored(s.ctx)
	s.Error(err)
}
