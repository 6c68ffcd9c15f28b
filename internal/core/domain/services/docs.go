// Package services contains pure domain services for the bakery storefront.
//
// OrderStateMachine is the single decision point for order status changes:
// given the current order, the requested target status, and the acting
// role, it answers whether the transition is permitted and which business
// guard, if any, blocks it. It performs no I/O; persistence and
// notification side effects belong to the application layer.
package services
