package ports

import "context"

// NotificationKind tells the mail relay which template to render.
type NotificationKind string

const (
	DeliveryCodeNotification NotificationKind = "delivery_code"
	AccountCodeNotification  NotificationKind = "account_code"
)

// Notification is a message for a buyer.
type Notification struct {
	Kind    NotificationKind
	To      string
	Subject string
	Body    string
}

// Notifier delivers notifications on a best-effort basis. A failure never
// invalidates the state change that triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
