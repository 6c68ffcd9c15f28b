package order

// NotificationKind names the outbound customer notification implied by a
// reached status. The mapping is fixed; delivery channels (email, webhook)
// live behind the Notifier port.
type NotificationKind int

const (
	// NotifyNone means the reached status emits no customer notification.
	NotifyNone NotificationKind = iota

	// NotifyConfirmed announces that the bakery accepted the order.
	NotifyConfirmed

	// NotifyReady announces that the order is ready for pickup or dispatch.
	NotifyReady

	// NotifyOutForDelivery announces that the order left the bakery.
	NotifyOutForDelivery

	// NotifyDelivered announces a finished delivery-variant order.
	NotifyDelivered

	// NotifyCompleted announces a finished pickup-variant order.
	NotifyCompleted

	// NotifyCancelled announces a cancellation, including its reason.
	NotifyCancelled
)

func getNotificationKindStrings() map[NotificationKind]string {
	return map[NotificationKind]string{
		NotifyNone:           "none",
		NotifyConfirmed:      "order_confirmed",
		NotifyReady:          "order_ready",
		NotifyOutForDelivery: "order_out_for_delivery",
		NotifyDelivered:      "order_delivered",
		NotifyCompleted:      "order_completed",
		NotifyCancelled:      "order_cancelled",
	}
}

// NotificationKindFor maps a reached status to its notification.
// InProgress is internal to the bakery and emits nothing.
func NotificationKindFor(reached Status) NotificationKind {
	//nolint:exhaustive // statuses without a customer-facing event fall through
	switch reached {
	case Confirmed:
		return NotifyConfirmed
	case Ready:
		return NotifyReady
	case OutForDelivery:
		return NotifyOutForDelivery
	case Delivered:
		return NotifyDelivered
	case Completed:
		return NotifyCompleted
	case Cancelled:
		return NotifyCancelled
	default:
		return NotifyNone
	}
}

// String returns the event name used on the wire for this kind.
func (k NotificationKind) String() string {
	if str, ok := getNotificationKindStrings()[k]; ok {
		return str
	}
	return "none"
}
