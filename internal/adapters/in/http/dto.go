package http

import (
	"time"

	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/shipment"
)

// The JSON field names below are the external contract of the reservation
// API; reception consoles and the reporting stack code against them. Renaming
// one is a breaking change.

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CreateBookingRequest is the payload of POST /api/v1/bookings.
type CreateBookingRequest struct {
	DailyTripID   string `json:"dailyTripId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	PaymentMethod string `json:"paymentMethod"`
}

// CancelBookingRequest is the payload of PUT /api/v1/bookings/:id/cancel.
// The acting user comes from the bearer token, not the body.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// BookingResponse is the booking view returned by the lifecycle endpoints
// and each row of GET /api/v1/bookings.
type BookingResponse struct {
	ID                 string     `json:"id"`
	TicketNumber       string     `json:"ticketNumber"`
	DailyTripID        string     `json:"dailyTripId"`
	SeatNumber         int        `json:"seatNumber"`
	CustomerName       string     `json:"customerName"`
	CustomerPhone      string     `json:"customerPhone"`
	Price              int64      `json:"price"`
	PaymentMethod      string     `json:"paymentMethod"`
	PaymentStatus      string     `json:"paymentStatus"`
	BookingStatus      string     `json:"bookingStatus"`
	BookingDate        time.Time  `json:"bookingDate"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy        string     `json:"cancelledBy,omitempty"`
}

func bookingResponseFromAggregate(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID().String(),
		TicketNumber:       b.TicketNumber().String(),
		DailyTripID:        b.TripID().String(),
		SeatNumber:         b.SeatNumber(),
		CustomerName:       b.Customer().Names(),
		CustomerPhone:      b.Customer().PhoneNumber(),
		Price:              b.Price(),
		PaymentMethod:      b.PaymentMethod().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		BookingStatus:      b.Status().String(),
		BookingDate:        b.BookingDate(),
		CancellationReason: b.CancellationReason(),
		CancelledAt:        b.CancelledAt(),
		CancelledBy:        b.CancelledBy(),
	}
}

func bookingResponseFromRow(row queries.ListBookingsQueryResponse) BookingResponse {
	return BookingResponse{
		ID:                 row.ID.String(),
		TicketNumber:       row.TicketNumber,
		DailyTripID:        row.TripID.String(),
		SeatNumber:         row.SeatNumber,
		CustomerName:       row.CustomerName,
		CustomerPhone:      row.CustomerPhone,
		Price:              row.Price,
		PaymentMethod:      row.PaymentMethod,
		PaymentStatus:      row.PaymentStatus,
		BookingStatus:      row.Status,
		BookingDate:        row.BookingDate,
		CancellationReason: row.CancellationReason,
		CancelledAt:        row.CancelledAt,
		CancelledBy:        row.CancelledBy,
	}
}

// BookPackageRequest is the payload of POST /api/v1/packages.
type BookPackageRequest struct {
	DailyTripID      string  `json:"dailyTripId"`
	SenderNames      string  `json:"senderNames"`
	SenderPhone      string  `json:"senderPhone"`
	SenderEmail      string  `json:"senderEmail,omitempty"`
	SenderIDNumber   string  `json:"senderIdNumber,omitempty"`
	ReceiverNames    string  `json:"receiverNames"`
	ReceiverPhone    string  `json:"receiverPhone"`
	ReceiverEmail    string  `json:"receiverEmail,omitempty"`
	ReceiverIDNumber string  `json:"receiverIdNumber"`
	PackageWeight    float64 `json:"packageWeight"`
	PackageValue     *int64  `json:"packageValue,omitempty"`
	IsFragile        bool    `json:"isFragile"`
	PaymentMethod    string  `json:"paymentMethod"`
}

// CollectPackageRequest is the payload of POST /api/v1/packages/:id/collect.
type CollectPackageRequest struct {
	ReceiverIDNumber string `json:"receiverIdNumber"`
	CollectedByName  string `json:"collectedByName"`
}

// CancelPackageRequest is the payload of PUT /api/v1/packages/:id/cancel.
type CancelPackageRequest struct {
	Reason string `json:"reason"`
}

// PackageResponse is the package view returned by the lifecycle endpoints
// and each row of GET /api/v1/packages.
type PackageResponse struct {
	ID                  string     `json:"id"`
	TrackingNumber      string     `json:"trackingNumber"`
	DailyTripID         string     `json:"dailyTripId"`
	SenderNames         string     `json:"senderNames"`
	SenderPhone         string     `json:"senderPhone"`
	ReceiverNames       string     `json:"receiverNames"`
	ReceiverPhone       string     `json:"receiverPhone"`
	PackageWeight       float64    `json:"packageWeight"`
	PackageValue        *int64     `json:"packageValue,omitempty"`
	IsFragile           bool       `json:"isFragile"`
	Price               int64      `json:"price"`
	PaymentMethod       string     `json:"paymentMethod"`
	PackageStatus       string     `json:"packageStatus"`
	BookingDate         time.Time  `json:"bookingDate"`
	ExpectedArrivalTime time.Time  `json:"expectedArrivalTime"`
	ActualArrivalTime   *time.Time `json:"actualArrivalTime,omitempty"`
	CollectedAt         *time.Time `json:"collectedAt,omitempty"`
	CollectedByName     string     `json:"collectedByName,omitempty"`
	CancellationReason  string     `json:"cancellationReason,omitempty"`
}

func packageResponseFromAggregate(p *shipment.Package) PackageResponse {
	return PackageResponse{
		ID:                  p.ID().String(),
		TrackingNumber:      p.TrackingNumber().String(),
		DailyTripID:         p.TripID().String(),
		SenderNames:         p.Sender().Names(),
		SenderPhone:         p.Sender().PhoneNumber(),
		ReceiverNames:       p.Receiver().Names(),
		ReceiverPhone:       p.Receiver().PhoneNumber(),
		PackageWeight:       p.WeightKg(),
		PackageValue:        p.DeclaredValue(),
		IsFragile:           p.IsFragile(),
		Price:               p.Price(),
		PaymentMethod:       p.PaymentMethod().String(),
		PackageStatus:       p.Status().String(),
		BookingDate:         p.BookingDate(),
		ExpectedArrivalTime: p.ExpectedArrivalTime(),
		ActualArrivalTime:   p.ActualArrivalTime(),
		CollectedAt:         p.CollectedAt(),
		CollectedByName:     p.CollectedByName(),
		CancellationReason:  p.CancellationReason(),
	}
}

func packageResponseFromRow(row queries.ListPackagesQueryResponse) PackageResponse {
	return PackageResponse{
		ID:                  row.ID.String(),
		TrackingNumber:      row.TrackingNumber,
		DailyTripID:         row.TripID.String(),
		SenderNames:         row.SenderNames,
		SenderPhone:         row.SenderPhone,
		ReceiverNames:       row.ReceiverNames,
		ReceiverPhone:       row.ReceiverPhone,
		PackageWeight:       row.WeightKg,
		PackageValue:        row.DeclaredValue,
		IsFragile:           row.IsFragile,
		Price:               row.Price,
		PaymentMethod:       row.PaymentMethod,
		PackageStatus:       row.Status,
		BookingDate:         row.BookingDate,
		ExpectedArrivalTime: row.ExpectedArrivalTime,
		ActualArrivalTime:   row.ActualArrivalTime,
		CollectedAt:         row.CollectedAt,
		CollectedByName:     row.CollectedByName,
		CancellationReason:  row.CancellationReason,
	}
}

// TrackPackageResponse is the public tracking view. It deliberately omits
// every customer field: anyone holding a tracking number may call the
// endpoint.
type TrackPackageResponse struct {
	TrackingNumber      string     `json:"trackingNumber"`
	PackageStatus       string     `json:"packageStatus"`
	Origin              string     `json:"origin"`
	Destination         string     `json:"destination"`
	ExpectedArrivalTime time.Time  `json:"expectedArrivalTime"`
	ActualArrivalTime   *time.Time `json:"actualArrivalTime,omitempty"`
	CollectedAt         *time.Time `json:"collectedAt,omitempty"`
}

// EstimateResponse is the public price-estimate view.
type EstimateResponse struct {
	Price int64 `json:"price"`
}

// StatusDescription is one entry of the status catalog consumed by console
// badge components.
type StatusDescription struct {
	Code     string   `json:"code"`
	Label    string   `json:"label"`
	Terminal bool     `json:"terminal"`
	Next     []string `json:"next"`
}

// StatusCatalogResponse lists every booking and package status with its
// allowed transitions.
type StatusCatalogResponse struct {
	BookingStatuses []StatusDescription `json:"bookingStatuses"`
	PackageStatuses []StatusDescription `json:"packageStatuses"`
}
