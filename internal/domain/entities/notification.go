package entities

import "time"

type NotificationType string

const (
	NotificationEquityOffer         NotificationType = "EQUITY_OFFER"
	NotificationEquityOfferAccepted NotificationType = "EQUITY_OFFER_ACCEPTED"
	NotificationEquityOfferRejected NotificationType = "EQUITY_OFFER_REJECTED"
	NotificationEquityOfferExpired  NotificationType = "EQUITY_OFFER_EXPIRED"
)

// Notification is a user-facing event record.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
