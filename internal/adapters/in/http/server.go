// Package http is the inbound HTTP adapter of the reservation service. It
// translates the console's JSON contracts into commands and queries and maps
// use-case errors onto HTTP statuses.
package http

import (
	"net/http"
	"strconv"
	"time"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/application/usecases/queries"
	"reservation/internal/core/domain/model/booking"
	"reservation/internal/core/domain/model/kernel"
	"reservation/internal/core/domain/model/shipment"
	"reservation/internal/core/domain/services"
	"reservation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server holds the command and query handlers behind the HTTP routes.
type Server struct {
	// Command handlers
	createBookingHandler      commands.CreateBookingCommandHandler
	cancelBookingHandler      commands.CancelBookingCommandHandler
	bookPackageHandler        commands.BookPackageCommandHandler
	markPackageArrivedHandler commands.MarkPackageArrivedCommandHandler
	collectPackageHandler     commands.CollectPackageCommandHandler
	cancelPackageHandler      commands.CancelPackageCommandHandler

	// Query handlers
	listBookingsHandler         queries.ListBookingsQueryHandler
	listPackagesHandler         queries.ListPackagesQueryHandler
	trackPackageHandler         queries.TrackPackageQueryHandler
	estimatePackagePriceHandler queries.EstimatePackagePriceQueryHandler
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	createBookingHandler commands.CreateBookingCommandHandler,
	cancelBookingHandler commands.CancelBookingCommandHandler,
	bookPackageHandler commands.BookPackageCommandHandler,
	markPackageArrivedHandler commands.MarkPackageArrivedCommandHandler,
	collectPackageHandler commands.CollectPackageCommandHandler,
	cancelPackageHandler commands.CancelPackageCommandHandler,
	listBookingsHandler queries.ListBookingsQueryHandler,
	listPackagesHandler queries.ListPackagesQueryHandler,
	trackPackageHandler queries.TrackPackageQueryHandler,
	estimatePackagePriceHandler queries.EstimatePackagePriceQueryHandler,
) *Server {
	return &Server{
		createBookingHandler:        createBookingHandler,
		cancelBookingHandler:        cancelBookingHandler,
		bookPackageHandler:          bookPackageHandler,
		markPackageArrivedHandler:   markPackageArrivedHandler,
		collectPackageHandler:       collectPackageHandler,
		cancelPackageHandler:        cancelPackageHandler,
		listBookingsHandler:         listBookingsHandler,
		listPackagesHandler:         listPackagesHandler,
		trackPackageHandler:         trackPackageHandler,
		estimatePackagePriceHandler: estimatePackagePriceHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance. Console routes sit
// behind the bearer-token middleware; tracking, estimates, the status catalog
// and the health check are public.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/health", s.Health)

	public := e.Group("/api/v1")
	public.GET("/track/:trackingNumber", s.TrackPackage)
	public.GET("/packages/estimate", s.EstimatePackagePrice)
	public.GET("/statuses", s.GetStatusCatalog)

	console := e.Group("/api/v1", ActorMiddleware(jwtSecret))
	console.POST("/bookings", s.CreateBooking)
	console.GET("/bookings", s.ListBookings)
	console.PUT("/bookings/:id/cancel", s.CancelBooking)
	console.POST("/packages", s.BookPackage)
	console.GET("/packages", s.ListPackages)
	console.PUT("/packages/:id/arrived", s.MarkPackageArrived)
	console.POST("/packages/:id/collect", s.CollectPackage)
	console.PUT("/packages/:id/cancel", s.CancelPackage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateBooking handles POST /api/v1/bookings - reserves one seat on a trip.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	tripID, err := kernel.UUIDFromString(req.DailyTripID)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := kernel.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateBookingCommand(tripID, req.CustomerName, req.CustomerPhone, method)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, bookingResponseFromAggregate(created))
}

// CancelBooking handles PUT /api/v1/bookings/:id/cancel. The cancelling user
// is taken from the bearer token and stamped as cancelledBy.
func (s *Server) CancelBooking(ctx echo.Context) error {
	bookingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelBookingRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID, req.Reason, Actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelBookingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bookingResponseFromAggregate(cancelled))
}

// ListBookings handles GET /api/v1/bookings with optional status, trip and
// date-range filters.
func (s *Server) ListBookings(ctx echo.Context) error {
	filter := queries.ListBookingsFilter{
		Status: ctx.QueryParam("status"),
		TripID: ctx.QueryParam("dailyTripId"),
	}

	var err error
	if filter.DateFrom, err = parseDateParam("dateFrom", ctx.QueryParam("dateFrom")); err != nil {
		return respondError(ctx, err)
	}
	if filter.DateTo, err = parseDateParam("dateTo", ctx.QueryParam("dateTo")); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListBookingsQuery(filter)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]BookingResponse, len(rows))
	for i, row := range rows {
		response[i] = bookingResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// BookPackage handles POST /api/v1/packages - books a package onto a trip.
func (s *Server) BookPackage(ctx echo.Context) error {
	var req BookPackageRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	tripID, err := kernel.UUIDFromString(req.DailyTripID)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := kernel.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	sender, err := shipment.NewParty(req.SenderNames, req.SenderPhone, req.SenderEmail, req.SenderIDNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	receiver, err := shipment.NewParty(req.ReceiverNames, req.ReceiverPhone, req.ReceiverEmail, req.ReceiverIDNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBookPackageCommand(
		tripID, sender, receiver, req.PackageWeight, req.PackageValue, req.IsFragile, method)
	if err != nil {
		return respondError(ctx, err)
	}

	booked, err := s.bookPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, packageResponseFromAggregate(booked))
}

// ListPackages handles GET /api/v1/packages with optional status, trip and
// date-range filters.
func (s *Server) ListPackages(ctx echo.Context) error {
	filter := queries.ListPackagesFilter{
		Status: ctx.QueryParam("status"),
		TripID: ctx.QueryParam("dailyTripId"),
	}

	var err error
	if filter.DateFrom, err = parseDateParam("dateFrom", ctx.QueryParam("dateFrom")); err != nil {
		return respondError(ctx, err)
	}
	if filter.DateTo, err = parseDateParam("dateTo", ctx.QueryParam("dateTo")); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListPackagesQuery(filter)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.listPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PackageResponse, len(rows))
	for i, row := range rows {
		response[i] = packageResponseFromRow(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkPackageArrived handles PUT /api/v1/packages/:id/arrived.
func (s *Server) MarkPackageArrived(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPackageArrivedCommand(packageID)
	if err != nil {
		return respondError(ctx, err)
	}

	arrived, err := s.markPackageArrivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageResponseFromAggregate(arrived))
}

// CollectPackage handles POST /api/v1/packages/:id/collect. A mismatched ID
// number returns 403 and leaves the package collectable.
func (s *Server) CollectPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CollectPackageRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCollectPackageCommand(packageID, req.ReceiverIDNumber, req.CollectedByName)
	if err != nil {
		return respondError(ctx, err)
	}

	collected, err := s.collectPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageResponseFromAggregate(collected))
}

// CancelPackage handles PUT /api/v1/packages/:id/cancel.
func (s *Server) CancelPackage(ctx echo.Context) error {
	packageID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelPackageRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewCancelPackageCommand(packageID, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	cancelled, err := s.cancelPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageResponseFromAggregate(cancelled))
}

// TrackPackage handles GET /api/v1/track/:trackingNumber - the public
// tracking view.
func (s *Server) TrackPackage(ctx echo.Context) error {
	query, err := queries.NewTrackPackageQuery(ctx.Param("trackingNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.trackPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackPackageResponse{
		TrackingNumber:      result.TrackingNumber,
		PackageStatus:       result.Status,
		Origin:              result.Origin,
		Destination:         result.Destination,
		ExpectedArrivalTime: result.ExpectedArrivalTime,
		ActualArrivalTime:   result.ActualArrivalTime,
		CollectedAt:         result.CollectedAt,
	})
}

// EstimatePackagePrice handles GET /api/v1/packages/estimate - computes what
// a package would cost, with the same pricing function booking uses.
func (s *Server) EstimatePackagePrice(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.QueryParam("dailyTripId"))
	if err != nil {
		return respondError(ctx, err)
	}

	weight, err := strconv.ParseFloat(ctx.QueryParam("packageWeight"), 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "packageWeight must be a number"})
	}

	query, err := queries.NewEstimatePackagePriceQuery(tripID, weight)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.estimatePackagePriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EstimateResponse{Price: result.Price})
}

// GetStatusCatalog handles GET /api/v1/statuses - the transition table
// console badge components render from.
func (s *Server) GetStatusCatalog(ctx echo.Context) error {
	bookingStatuses := []booking.Status{booking.Confirmed, booking.Cancelled, booking.NoShow}
	packageStatuses := []shipment.Status{
		shipment.InTransit, shipment.Arrived, shipment.Collected, shipment.Cancelled,
	}

	response := StatusCatalogResponse{
		BookingStatuses: make([]StatusDescription, len(bookingStatuses)),
		PackageStatuses: make([]StatusDescription, len(packageStatuses)),
	}
	for i, status := range bookingStatuses {
		response.BookingStatuses[i] = statusDescription(services.DescribeBookingStatus(status))
	}
	for i, status := range packageStatuses {
		response.PackageStatuses[i] = statusDescription(services.DescribePackageStatus(status))
	}

	return ctx.JSON(http.StatusOK, response)
}

func statusDescription(d services.StatusDescription) StatusDescription {
	return StatusDescription{
		Code:     d.Code,
		Label:    d.Label,
		Terminal: d.Terminal,
		Next:     d.Next,
	}
}

func parseDateParam(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// date-only filters are common from the console's date pickers
		parsed, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return parsed, nil
}
