package queries

import (
	"context"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// GetAvailableTransitionsQueryHandler resolves the order aggregate and
// evaluates the state machine against it. Unlike the other read paths it
// goes through the repository, not raw SQL, because availability depends
// on the aggregate's payment and readiness fields.
type GetAvailableTransitionsQueryHandler struct {
	orders  ports.OrderRepository
	machine services.OrderStateMachine
}

// NewGetAvailableTransitionsQueryHandler creates the handler.
func NewGetAvailableTransitionsQueryHandler(
	orders ports.OrderRepository,
	machine services.OrderStateMachine,
) GetAvailableTransitionsQueryHandler {
	return GetAvailableTransitionsQueryHandler{orders: orders, machine: machine}
}

// Handle returns the statuses the actor may move the order into from its
// current state. The result reflects one moment in time; a transition
// executed afterwards may still fail on the optimistic status guard.
func (h GetAvailableTransitionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTransitionsQuery,
) (GetAvailableTransitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableTransitionsQueryResponse{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetAvailableTransitionsQueryResponse{}, err
	}

	targets := h.machine.AvailableTransitions(aggregate, query.ActorRole())
	if targets == nil {
		targets = []order.Status{}
	}

	return GetAvailableTransitionsQueryResponse{
		OrderID:       aggregate.ID(),
		CurrentStatus: aggregate.Status(),
		Targets:       targets,
	}, nil
}
