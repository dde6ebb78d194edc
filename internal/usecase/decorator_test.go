//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/shared"
	"styledecor/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DecoratorBookingUseCaseTestSuite struct {
	mockSuite
	uc usecase.DecoratorBookingUseCase
}

func (s *DecoratorBookingUseCaseTestSuite) SetupTest() {
	s.mockSuite.SetupTest()
	s.uc = s.decoratorUseCase()
}

func TestDecoratorBookingUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(DecoratorBookingUseCaseTestSuite))
}

func (s *DecoratorBookingUseCaseTestSuite) TestAdvanceStatus() {
	decorator := builder.NewPrincipalBuilder().AsDecorator().Build()
	assigned := func(st booking.Status) *builder.BookingBuilder {
		return builder.NewBookingBuilder().WithStatus(st).WithDecorator(decorator.Email)
	}

	s.Run("next rung", func() {
		s.SetupTest()
		bb := assigned(booking.StatusPlanning)
		before := bb.BuildDomain()
		after := bb.WithStatus(booking.StatusMaterials).BuildDomain()

		gomock.InOrder(
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(before, nil),
			s.bookings.EXPECT().Patch(gomock.Any(), before.ID(), shared.BookingPatch{
				Status:       booking.StatusMaterials,
				ExpectStatus: booking.StatusPlanning,
			}).Return(int64(1), nil),
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(after, nil),
		)
		s.events.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n shared.Notification) error {
				s.Equal(shared.TemplateStatusChanged, n.Template)
				s.Equal(after.CustomerEmail(), n.To)
				s.Equal(booking.StatusMaterials, n.Status)
				return nil
			})

		result, err := s.uc.AdvanceStatus(s.ctx, decorator, before.ID(), booking.StatusMaterials)

		s.Require().NoError(err)
		s.Equal(int64(1), result.ModifiedCount)
		s.Equal(booking.StatusMaterials, result.Booking.Status())
		s.Empty(result.Warnings)
	})

	s.Run("skipping a rung writes nothing", func() {
		s.SetupTest()
		b := assigned(booking.StatusPlanning).BuildDomain()

		s.bookings.EXPECT().GetByID(gomock.Any(), b.ID()).Return(b, nil)

		result, err := s.uc.AdvanceStatus(s.ctx, decorator, b.ID(), booking.StatusCompleted)

		s.Nil(result)
		s.ErrorIs(err, booking.ErrIllegalTransition)
	})

	s.Run("unassigned decorator", func() {
		s.SetupTest()
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPlanning).WithDecorator("other@example.com").BuildDomain()

		s.bookings.EXPECT().GetByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.uc.AdvanceStatus(s.ctx, decorator, b.ID(), booking.StatusMaterials)

		s.ErrorIs(err, booking.ErrIllegalTransition)
	})

	s.Run("notification failure keeps the status", func() {
		s.SetupTest()
		bb := assigned(booking.StatusSetup)
		before := bb.BuildDomain()
		after := bb.WithStatus(booking.StatusCompleted).BuildDomain()

		gomock.InOrder(
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(before, nil),
			s.bookings.EXPECT().Patch(gomock.Any(), before.ID(), gomock.Any()).Return(int64(1), nil),
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(after, nil),
		)
		s.events.EXPECT().PublishStatusChanged(gomock.Any(), gomock.Any()).Return(nil)
		s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp unavailable"))

		result, err := s.uc.AdvanceStatus(s.ctx, decorator, before.ID(), booking.StatusCompleted)

		s.Require().NoError(err)
		s.Equal(booking.StatusCompleted, result.Booking.Status())
		s.Len(result.Warnings, 1)
	})

	s.Run("concurrent write reports a no-op", func() {
		s.SetupTest()
		bb := assigned(booking.StatusPlanning)
		before := bb.BuildDomain()
		moved := bb.WithStatus(booking.StatusCancelled).BuildDomain()

		gomock.InOrder(
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(before, nil),
			s.bookings.EXPECT().Patch(gomock.Any(), before.ID(), gomock.Any()).Return(int64(0), nil),
			s.bookings.EXPECT().GetByID(gomock.Any(), before.ID()).Return(moved, nil),
		)

		result, err := s.uc.AdvanceStatus(s.ctx, decorator, before.ID(), booking.StatusMaterials)

		w, ok := usecase.AsNoOpWrite(err)
		s.Require().True(ok)
		s.Equal(booking.StatusCancelled, w.Current.Status())
		s.Equal(int64(0), result.ModifiedCount)
	})
}

func (s *DecoratorBookingUseCaseTestSuite) TestListAssigned() {
	s.Run("filters by the decorator", func() {
		s.SetupTest()
		decorator := builder.NewPrincipalBuilder().AsDecorator().Build()

		s.bookings.EXPECT().List(gomock.Any(), shared.BookingFilter{DecoratorEmail: decorator.Email, Page: 2, Limit: 50}).
			Return(shared.BookingPage{Total: 51}, nil)

		result, err := s.uc.ListAssigned(s.ctx, decorator, 2, 500)

		s.Require().NoError(err)
		s.Equal(2, result.PageCount)
		s.Empty(result.Items)
	})

	s.Run("customers have no assignments", func() {
		s.SetupTest()

		_, err := s.uc.ListAssigned(s.ctx, builder.NewPrincipalBuilder().Build(), 1, 10)

		s.ErrorIs(err, usecase.ErrForbidden)
	})
}
