package response

import (
	"time"

	"styledecor/internal/domain/booking"
	"styledecor/internal/pkg/ptr"
	"styledecor/internal/usecase"
	"styledecor/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddOnResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type BookingResponse struct {
	ID              uuid.UUID       `json:"id"`
	UserEmail       string          `json:"userEmail"`
	UserName        string          `json:"userName"`
	ServiceID       string          `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	ServiceImage    string          `json:"serviceImage,omitempty"`
	DecoratorEmail  *string         `json:"decoratorEmail,omitempty"`
	Status          string          `json:"status"`
	Date            string          `json:"date"`
	Slot            string          `json:"slot,omitempty"`
	ServiceType     string          `json:"serviceType"`
	Address         string          `json:"address"`
	BasePrice       float64         `json:"basePrice"`
	AddOns          []AddOnResponse `json:"addOns"`
	CouponCode      *string         `json:"couponCode,omitempty"`
	DiscountPercent *float64        `json:"discountPercent,omitempty"`
	Price           float64         `json:"price"`
	OriginalPrice   float64         `json:"originalPrice"`
	UnreadCount     *int            `json:"unreadCount,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	svc := b.Service()
	addOns := b.AddOns()
	resp := &BookingResponse{
		ID:              b.ID(),
		UserEmail:       b.CustomerEmail(),
		UserName:        b.CustomerName(),
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		ServiceImage:    svc.Image,
		DecoratorEmail:  ptr.NonZero(b.DecoratorEmail()),
		Status:          b.Status().String(),
		Date:            b.Date().Format(time.DateOnly),
		Slot:            b.Slot(),
		ServiceType:     b.ServiceType().String(),
		Address:         b.Address(),
		BasePrice:       b.BasePrice().Amount(),
		AddOns:          make([]AddOnResponse, len(addOns)),
		CouponCode:      ptr.NonZero(b.CouponCode()),
		DiscountPercent: b.DiscountPercent(),
		Price:           b.Price().Amount(),
		OriginalPrice:   b.OriginalPrice().Amount(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
	for i, a := range addOns {
		resp.AddOns[i] = AddOnResponse{Name: a.Name, Price: a.Price.Amount()}
	}
	return resp
}

type BookingListResponse struct {
	Data      []*BookingResponse `json:"data"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	PageCount int                `json:"pageCount"`
}

func FromListResult(r *usecase.ListResult) (*BookingListResponse, error) {
	resp := &BookingListResponse{Data: make([]*BookingResponse, len(r.Items))}
	if err := copier.Copy(resp, r); err != nil {
		return nil, err
	}
	for i, item := range r.Items {
		b := FromBooking(item.Booking)
		b.UnreadCount = ptr.Of(item.UnreadCount)
		resp.Data[i] = b
	}
	return resp, nil
}

type TrackingStepResponse struct {
	Status  string `json:"status"`
	Label   string `json:"label"`
	Reached bool   `json:"reached"`
	Current bool   `json:"current"`
}

type TrackingResponse struct {
	Status       string                 `json:"status"`
	Steps        []TrackingStepResponse `json:"steps"`
	CurrentIndex int                    `json:"currentIndex"`
	Paid         bool                   `json:"paid"`
	Cancelled    bool                   `json:"cancelled"`
}

func FromTracking(t booking.Tracking) *TrackingResponse {
	resp := &TrackingResponse{
		Status:       t.Status.String(),
		Steps:        make([]TrackingStepResponse, len(t.Steps)),
		CurrentIndex: t.CurrentIndex,
		Paid:         t.Paid,
		Cancelled:    t.Cancelled,
	}
	for i, s := range t.Steps {
		resp.Steps[i] = TrackingStepResponse{
			Status:  s.Status.String(),
			Label:   s.Label,
			Reached: s.Reached,
			Current: s.Current,
		}
	}
	return resp
}

type BookingDetailResponse struct {
	*BookingResponse
	Tracking *TrackingResponse `json:"tracking"`
}

func FromBookingDetail(d *usecase.BookingDetail) *BookingDetailResponse {
	b := FromBooking(d.Booking)
	b.UnreadCount = ptr.Of(d.UnreadCount)
	return &BookingDetailResponse{BookingResponse: b, Tracking: FromTracking(d.Tracking)}
}

type BookResponse struct {
	InsertedID uuid.UUID        `json:"insertedId"`
	Booking    *BookingResponse `json:"booking"`
	Warnings   []string         `json:"warnings,omitempty"`
}

func FromBookResult(r *usecase.BookResult) *BookResponse {
	return &BookResponse{InsertedID: r.InsertedID, Booking: FromBooking(r.Booking), Warnings: r.Warnings}
}

type TransitionResponse struct {
	ModifiedCount int64            `json:"modifiedCount"`
	Booking       *BookingResponse `json:"booking"`
	Warnings      []string         `json:"warnings,omitempty"`
}

func FromTransitionResult(r *usecase.TransitionResult) *TransitionResponse {
	return &TransitionResponse{ModifiedCount: r.ModifiedCount, Booking: FromBooking(r.Booking), Warnings: r.Warnings}
}

type CancelResponse struct {
	DeletedCount int64    `json:"deletedCount"`
	Warnings     []string `json:"warnings,omitempty"`
}

func FromCancelResult(r *usecase.CancelResult) (*CancelResponse, error) {
	resp := &CancelResponse{}
	if err := copier.Copy(resp, r); err != nil {
		return nil, err
	}
	return resp, nil
}

type StatsResponse struct {
	TotalBookings int64   `json:"totalBookings"`
	PaidBookings  int64   `json:"paidBookings"`
	Revenue       float64 `json:"revenue"`
}

func FromBookingStats(s *shared.BookingStats) *StatsResponse {
	return &StatsResponse{
		TotalBookings: s.TotalBookings,
		PaidBookings:  s.PaidBookings,
		Revenue:       s.Revenue.Amount(),
	}
}
