//go:build unit

package review_test

import (
	"strings"
	"testing"

	"styledecor/internal/domain/booking"
	"styledecor/internal/domain/review"
	"styledecor/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rb := builder.NewReviewBuilder()
		actual, err := rb.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, rb.CreatedAt, actual.CreatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "The room looks wonderful", actual.Comment().String())
		assert.Equal(t, "customer@example.com", actual.UserEmail())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "below minimum rating", mutate: func(r *builder.ReviewBuilder) { r.Rating = 0 }, errIs: review.ErrInvalidRating},
			{name: "minimum rating", mutate: func(r *builder.ReviewBuilder) { r.Rating = 1 }},
			{name: "maximum rating", mutate: func(r *builder.ReviewBuilder) { r.Rating = 5 }},
			{name: "above maximum rating", mutate: func(r *builder.ReviewBuilder) { r.Rating = 6 }, errIs: review.ErrInvalidRating},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty comment", mutate: func(r *builder.ReviewBuilder) { r.Comment = "" }, errIs: review.ErrEmptyComment},
			{name: "whitespace only", mutate: func(r *builder.ReviewBuilder) { r.Comment = "   " }, errIs: review.ErrEmptyComment},
			{name: "max length", mutate: func(r *builder.ReviewBuilder) { r.Comment = strings.Repeat("a", review.MaxCommentLength) }},
			{name: "too long", mutate: func(r *builder.ReviewBuilder) { r.Comment = strings.Repeat("a", review.MaxCommentLength+1) }, errIs: review.ErrCommentTooLong},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestCheckEligibility(t *testing.T) {
	owner := builder.NewPrincipalBuilder().Build()
	other := builder.NewPrincipalBuilder().With(func(p *builder.PrincipalBuilder) { p.Email = "other@example.com" }).Build()

	testCases := []struct {
		name     string
		status   booking.Status
		reviewer string
		eligible bool
	}{
		{name: "completed booking by owner", status: booking.StatusCompleted, eligible: true},
		{name: "paid booking by owner", status: booking.StatusPaid, eligible: true},
		{name: "booking still in setup", status: booking.StatusSetup},
		{name: "cancelled booking", status: booking.StatusCancelled},
		{name: "someone else's booking", status: booking.StatusCompleted, reviewer: "other"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(tc.status).BuildDomain()
			reviewer := owner
			if tc.reviewer == "other" {
				reviewer = other
			}
			err := review.CheckEligibility(b, reviewer)
			if tc.eligible {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, review.ErrBookingNotEligible)
			}
		})
	}
}
