//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"styledecor/internal/domain/coupon"
	"styledecor/internal/pkg/clock"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/shared"
	sharedmock "styledecor/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	testNow        = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	testPagination = usecase.Pagination{DefaultLimit: 10, MaxLimit: 50}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockSuite wires every collaborator an orchestrator can take.
type mockSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	clock       *clock.MockClock
	bookings    *sharedmock.MockBookingRepository
	messages    *sharedmock.MockMessageRepository
	reviews     *sharedmock.MockReviewRepository
	payments    *sharedmock.MockPaymentRepository
	wishlist    *sharedmock.MockWishlistRepository
	stats       *sharedmock.MockStatsRepository
	gateway     *sharedmock.MockPaymentGateway
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	events      *sharedmock.MockEventPublisher
	notifier    *sharedmock.MockNotifier
	broadcaster *sharedmock.MockBroadcaster
}

func (s *mockSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(testNow)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.messages = sharedmock.NewMockMessageRepository(s.ctrl)
	s.reviews = sharedmock.NewMockReviewRepository(s.ctrl)
	s.payments = sharedmock.NewMockPaymentRepository(s.ctrl)
	s.wishlist = sharedmock.NewMockWishlistRepository(s.ctrl)
	s.stats = sharedmock.NewMockStatsRepository(s.ctrl)
	s.gateway = sharedmock.NewMockPaymentGateway(s.ctrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.events = sharedmock.NewMockEventPublisher(s.ctrl)
	s.notifier = sharedmock.NewMockNotifier(s.ctrl)
	s.broadcaster = sharedmock.NewMockBroadcaster(s.ctrl)
}

func (s *mockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *mockSuite) customerUseCase() usecase.CustomerBookingUseCase {
	return usecase.NewCustomerBookingUseCase(
		s.bookings, s.messages, s.reviews, s.payments, s.gateway, s.uow, s.events,
		coupon.DefaultCatalog(), s.clock, discardLogger(), testPagination,
	)
}

func (s *mockSuite) decoratorUseCase() usecase.DecoratorBookingUseCase {
	return usecase.NewDecoratorBookingUseCase(s.bookings, s.messages, s.events, s.notifier, s.clock, discardLogger(), testPagination)
}

func (s *mockSuite) adminUseCase() usecase.AdminBookingUseCase {
	return usecase.NewAdminBookingUseCase(s.bookings, s.messages, s.events, s.notifier, s.stats, s.clock, discardLogger(), testPagination)
}

func (s *mockSuite) queryUseCase() usecase.BookingQueryUseCase {
	return usecase.NewBookingQueryUseCase(s.bookings, s.messages, s.clock, discardLogger())
}

func (s *mockSuite) messagingUseCase() usecase.MessagingUseCase {
	return usecase.NewMessagingUseCase(s.bookings, s.messages, s.broadcaster, s.clock, discardLogger())
}

// runUoW makes Within execute its callback against the mocked Tx.
func (s *mockSuite) runUoW() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}
