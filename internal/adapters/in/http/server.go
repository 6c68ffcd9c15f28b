package http

import (
	"errors"
	"net/http"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over HTTP. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	transitionHandler      commands.TransitionOrderCommandHandler
	processTimeoutsHandler commands.ProcessOrderTimeoutsCommandHandler
	availableHandler       queries.GetAvailableTransitionsQueryHandler
	historyHandler         queries.GetOrderHistoryQueryHandler

	cronAuthToken string
}

// NewServer creates a new HTTP server with the required command and query handlers.
// cronAuthToken guards the scheduled-job trigger endpoint.
func NewServer(
	transitionHandler commands.TransitionOrderCommandHandler,
	processTimeoutsHandler commands.ProcessOrderTimeoutsCommandHandler,
	availableHandler queries.GetAvailableTransitionsQueryHandler,
	historyHandler queries.GetOrderHistoryQueryHandler,
	cronAuthToken string,
) *Server {
	return &Server{
		transitionHandler:      transitionHandler,
		processTimeoutsHandler: processTimeoutsHandler,
		availableHandler:       availableHandler,
		historyHandler:         historyHandler,
		cronAuthToken:          cronAuthToken,
	}
}

// RegisterRoutes attaches all routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders/:orderID/transition", s.TransitionOrder)
	e.GET("/api/v1/orders/:orderID/transitions", s.GetAvailableTransitions)
	e.GET("/api/v1/orders/:orderID/history", s.GetOrderHistory)
	e.POST("/api/v1/jobs/order-timeouts", s.RunOrderTimeouts)
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TransitionRequest is the body of a transition attempt.
type TransitionRequest struct {
	ToStatus string `json:"to_status"`
	Role     string `json:"role"`
	Reason   string `json:"reason,omitempty"`
}

// OrderResponse is the updated order returned after a transition.
type OrderResponse struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	PaymentStatus      string  `json:"payment_status"`
	DeliveryOption     string  `json:"delivery_option"`
	TotalCents         int64   `json:"total_cents"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
	ConfirmedAt        *string `json:"confirmed_at,omitempty"`
	ReadyAt            *string `json:"ready_at,omitempty"`
	CompletedAt        *string `json:"completed_at,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// TransitionOrder handles POST /api/v1/orders/:orderID/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	toStatus, err := order.StatusFromString(request.ToStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+request.ToStatus)
	}
	role, err := order.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+request.Role)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, toStatus, role, request.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	updated, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return transitionErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(updated))
}

// GetAvailableTransitions handles GET /api/v1/orders/:orderID/transitions.
// The acting role is passed as a query parameter.
func (s *Server) GetAvailableTransitions(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	role, err := order.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+ctx.QueryParam("role"))
	}

	query, err := queries.NewGetAvailableTransitionsQuery(orderID, role)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	response, err := s.availableHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to evaluate transitions")
	}

	targets := make([]string, len(response.Targets))
	for i, target := range response.Targets {
		targets[i] = target.String()
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"order_id":       response.OrderID.String(),
		"current_status": response.CurrentStatus.String(),
		"targets":        targets,
	})
}

// HistoryEntryResponse is one audit row.
type HistoryEntryResponse struct {
	ID             string `json:"id"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	ActorRole      string `json:"actor_role"`
	Reason         string `json:"reason,omitempty"`
	Auto           bool   `json:"auto"`
	AutoReason     string `json:"auto_reason,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

// GetOrderHistory handles GET /api/v1/orders/:orderID/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	entries, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve history")
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			ID:             entry.ID.String(),
			PreviousStatus: entry.PreviousStatus.String(),
			NewStatus:      entry.NewStatus.String(),
			ActorRole:      entry.ActorRole.String(),
			Reason:         entry.Reason,
			Auto:           entry.Auto,
			AutoReason:     entry.AutoReason,
			OccurredAt:     entry.OccurredAt.UTC().Format(time.RFC3339Nano),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RunOrderTimeouts handles POST /api/v1/jobs/order-timeouts. The endpoint
// exists for external schedulers; it requires the configured bearer token.
func (s *Server) RunOrderTimeouts(ctx echo.Context) error {
	if s.cronAuthToken == "" || ctx.Request().Header.Get("Authorization") != "Bearer "+s.cronAuthToken {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid or missing bearer token",
		})
	}

	summary, err := s.processTimeoutsHandler.Handle(
		ctx.Request().Context(), commands.NewProcessOrderTimeoutsCommand())
	if err != nil {
		return internalError(ctx, "Timeout sweep failed")
	}

	failures := make([]map[string]string, len(summary.Failures))
	for i, failure := range summary.Failures {
		failures[i] = map[string]string{
			"order_id": failure.OrderID,
			"error":    failure.Err.Error(),
		}
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"auto_completed": summary.AutoCompleted,
		"auto_cancelled": summary.AutoCancelled,
		"failures":       failures,
	})
}

func toOrderResponse(aggregate *order.Order) OrderResponse {
	return OrderResponse{
		ID:                 aggregate.ID().String(),
		Status:             aggregate.Status().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		DeliveryOption:     aggregate.DeliveryOption().String(),
		TotalCents:         aggregate.TotalCents(),
		CancellationReason: aggregate.CancellationReason(),
		ConfirmedAt:        formatTime(aggregate.ConfirmedAt()),
		ReadyAt:            formatTime(aggregate.ReadyAt()),
		CompletedAt:        formatTime(aggregate.CompletedAt()),
		CancelledAt:        formatTime(aggregate.CancelledAt()),
	}
}

// transitionErrorResponse maps executor failures onto HTTP statuses:
// unknown order 404, lost optimistic race 409, rejected transition 422.
func transitionErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Order was modified concurrently, reload and retry",
		})
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrPaymentRequired),
		errors.Is(err, services.ErrReasonRequired),
		errors.Is(err, services.ErrOrderNotReady):
		return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, "Failed to apply transition")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339Nano)
	return &formatted
}
