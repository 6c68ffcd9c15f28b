package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrGetAvailableTransitionsQueryIsNotConstructed = errors.New(
		"GetAvailableTransitionsQuery must be created via NewGetAvailableTransitionsQuery constructor",
	)
)

// GetAvailableTransitionsQuery asks which statuses one actor may move an
// order into right now. Storefront UIs use it to decide which action
// buttons to render.
//
// Example:
//
//	query, err := NewGetAvailableTransitionsQuery(orderID, order.RoleBaker)
//	if err != nil {
//	    return err
//	}
//	targets, err := handler.Handle(ctx, query)
type GetAvailableTransitionsQuery struct {
	orderID   kernel.UUID
	actorRole order.Role

	guard guard.ConstructorGuard
}

// NewGetAvailableTransitionsQuery creates a query for one order and role.
func NewGetAvailableTransitionsQuery(
	orderID kernel.UUID,
	actorRole order.Role,
) (GetAvailableTransitionsQuery, error) {
	if err := errors.Join(orderID.Validate(), actorRole.Validate()); err != nil {
		return GetAvailableTransitionsQuery{}, err
	}

	return GetAvailableTransitionsQuery{
		orderID:   orderID,
		actorRole: actorRole,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTransitionsQueryIsNotConstructed)
}

// OrderID returns the order being inspected.
func (q GetAvailableTransitionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ActorRole returns whose permissions are being inspected.
func (q GetAvailableTransitionsQuery) ActorRole() order.Role {
	return q.actorRole
}

// GetAvailableTransitionsQueryResponse reports the order's current status
// and the statuses the actor may request next. Targets is empty, never
// nil, for terminal states.
type GetAvailableTransitionsQueryResponse struct {
	OrderID       kernel.UUID
	CurrentStatus order.Status
	Targets       []order.Status
}
