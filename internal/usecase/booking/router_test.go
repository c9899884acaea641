//go:build unit

package booking_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"donor-booking/internal/domain/calendar"
	"donor-booking/internal/pkg/errs"
	"donor-booking/internal/pkg/metrics"
	"donor-booking/internal/usecase/booking"
	bookingmock "donor-booking/tests/mock/booking"
)

var remoteDown = errs.Mark(errs.New("connection error"), errs.ErrRemoteConnection)

type RouterTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	local    *bookingmock.MockLocalBackend
	remote   *bookingmock.MockRemoteBackend
	metrics  *metrics.Metrics
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.local = bookingmock.NewMockLocalBackend(s.mockCtrl)
	s.remote = bookingmock.NewMockRemoteBackend(s.mockCtrl)
	s.metrics = metrics.New(metrics.NewRegistry())
}

func (s *RouterTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RouterTestSuite) newRouter(mode booking.Mode) *booking.Router {
	r, err := booking.NewRouter(mode, s.local, s.remote, nil, s.metrics)
	s.Require().NoError(err)
	return r
}

func (s *RouterTestSuite) TestNewRouter() {
	s.Run("unknown mode", func() {
		_, err := booking.NewRouter(booking.Mode("Sideways"), s.local, s.remote, nil, nil)
		s.True(errs.Is(err, errs.ErrUnknownMode))
	})

	s.Run("missing backends", func() {
		_, err := booking.NewRouter(booking.ModeLocalOnly, nil, s.remote, nil, nil)
		s.Error(err)
		_, err = booking.NewRouter(booking.ModeRemoteOnly, s.local, nil, nil, nil)
		s.Error(err)
		_, err = booking.NewRouter(booking.ModeRemoteWithFallback, nil, s.remote, nil, nil)
		s.Error(err)
	})

	s.Run("local only does not need a remote", func() {
		r, err := booking.NewRouter(booking.ModeLocalOnly, s.local, nil, nil, nil)
		s.Require().NoError(err)
		s.Equal(booking.ModeLocalOnly, r.Mode())
		s.NoError(r.TestConnection(s.ctx))
		r.ClearCache()
	})
}

func (s *RouterTestSuite) TestLocalOnly() {
	r := s.newRouter(booking.ModeLocalOnly)
	want := &booking.Registration{ConfirmationCode: "T-Mon-O+-1234"}
	s.local.EXPECT().Reserve(gomock.Any(), "2025-01-06", "O+", "09:00", int64(7)).Return(want, nil).Times(1)

	got, err := r.Reserve(s.ctx, "2025-01-06", "O+", "09:00", 7)
	s.Require().NoError(err)
	s.Same(want, got)

	// ClearCache never reaches the remote in local mode
	r.ClearCache()

	s.Equal(1.0, testutil.ToFloat64(s.metrics.Operations.WithLabelValues("local", booking.OpReserve, metrics.OutcomeSuccess)))
}

func (s *RouterTestSuite) TestRemoteOnly() {
	r := s.newRouter(booking.ModeRemoteOnly)

	s.Run("errors surface as-is", func() {
		s.remote.EXPECT().AggregateStats(gomock.Any()).Return(nil, remoteDown).Times(1)

		_, err := r.AggregateStats(s.ctx)
		s.Same(remoteDown, err)
	})

	s.Run("cache and connection test go to the remote", func() {
		s.remote.EXPECT().ClearCache().Times(1)
		s.remote.EXPECT().TestConnection(gomock.Any()).Return(nil).Times(1)

		r.ClearCache()
		s.NoError(r.TestConnection(s.ctx))
	})
}

func (s *RouterTestSuite) TestRemoteWithFallback() {
	r := s.newRouter(booking.ModeRemoteWithFallback)

	s.Run("remote success is returned", func() {
		want := &booking.FreeSlots{Times: []string{"09:00"}}
		s.remote.EXPECT().ListFreeSlots(gomock.Any(), "2025-01-06", "A+").Return(want, nil).Times(1)

		got, err := r.ListFreeSlots(s.ctx, "2025-01-06", "A+")
		s.Require().NoError(err)
		s.Same(want, got)
	})

	s.Run("remote error falls back to local", func() {
		want := &booking.Cancellation{Message: "Booking cancelled"}
		gomock.InOrder(
			s.remote.EXPECT().Cancel(gomock.Any(), "2025-01-06", "T-1", int64(7)).Return(nil, remoteDown),
			s.local.EXPECT().Cancel(gomock.Any(), "2025-01-06", "T-1", int64(7)).Return(want, nil),
		)

		got, err := r.Cancel(s.ctx, "2025-01-06", "T-1", 7)
		s.Require().NoError(err)
		s.Same(want, got)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Fallbacks.WithLabelValues(booking.OpCancel)))
	})

	s.Run("remote reported errors also fall back", func() {
		reported := errs.Mark(errs.New("sheet locked"), errs.ErrRemoteReported)
		want := &booking.ExistingCheck{Exists: false}
		s.remote.EXPECT().CheckExisting(gomock.Any(), "2025-01-06", int64(7)).Return(nil, reported).Times(1)
		s.local.EXPECT().CheckExisting(gomock.Any(), "2025-01-06", int64(7)).Return(want, nil).Times(1)

		got, err := r.CheckExisting(s.ctx, "2025-01-06", 7)
		s.Require().NoError(err)
		s.Same(want, got)
	})

	s.Run("fallback error is returned", func() {
		localErr := errs.Mark(errs.New("you already have a booking on 2025-01-06"), errs.ErrDuplicateBooking)
		s.remote.EXPECT().Reserve(gomock.Any(), "2025-01-06", "O+", "09:00", int64(7)).Return(nil, remoteDown).Times(1)
		s.local.EXPECT().Reserve(gomock.Any(), "2025-01-06", "O+", "09:00", int64(7)).Return(nil, localErr).Times(1)

		_, err := r.Reserve(s.ctx, "2025-01-06", "O+", "09:00", 7)
		s.Same(localErr, err)
		s.False(errs.IsRemote(err))
	})

	s.Run("every operation falls back", func() {
		s.remote.EXPECT().ListBookableDates(gomock.Any(), int64(7), true).Return(nil, remoteDown)
		s.local.EXPECT().ListBookableDates(gomock.Any(), int64(7), true).Return(&booking.AvailableDates{}, nil)
		s.remote.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return(nil, remoteDown)
		s.local.EXPECT().ListUserBookings(gomock.Any(), int64(7)).Return(&booking.UserBookings{}, nil)
		s.remote.EXPECT().AggregateStats(gomock.Any()).Return(nil, remoteDown)
		s.local.EXPECT().AggregateStats(gomock.Any()).Return(&booking.Stats{}, nil)
		s.remote.EXPECT().AggregateQuotas(gomock.Any()).Return(nil, remoteDown)
		s.local.EXPECT().AggregateQuotas(gomock.Any()).Return(&booking.Quotas{}, nil)

		_, err := r.ListBookableDates(s.ctx, 7, true)
		s.NoError(err)
		_, err = r.ListUserBookings(s.ctx, 7)
		s.NoError(err)
		_, err = r.AggregateStats(s.ctx)
		s.NoError(err)
		_, err = r.AggregateQuotas(s.ctx)
		s.NoError(err)
	})

	s.Run("reset clears local state and cache", func() {
		s.local.EXPECT().Reset().Times(1)
		s.remote.EXPECT().ClearCache().Times(1)

		r.Reset(s.ctx)
	})
}

func (s *RouterTestSuite) TestReplaceQuotas() {
	table := calendar.QuotaTable{calendar.Monday: {calendar.OPositive: 4}}

	s.Run("local ledger receives the table", func() {
		s.local.EXPECT().ReplaceQuotas(table).Times(1)

		s.NoError(s.newRouter(booking.ModeLocalOnly).ReplaceQuotas(s.ctx, table))
	})

	s.Run("fallback mode updates the local ledger", func() {
		s.local.EXPECT().ReplaceQuotas(table).Times(1)

		s.NoError(s.newRouter(booking.ModeRemoteWithFallback).ReplaceQuotas(s.ctx, table))
	})

	s.Run("remote-only mode refuses", func() {
		err := s.newRouter(booking.ModeRemoteOnly).ReplaceQuotas(s.ctx, table)
		s.True(errs.Is(err, errs.ErrUnsupportedOperation))
	})
}
