package ports

import (
	"context"

	"booking/internal/core/domain/model/kernel"
)

// Channel selects which delivery paths a notification fan-out uses.
type Channel string

const (
	// ChannelPush delivers via the push gateway only.
	ChannelPush Channel = "push"

	// ChannelSMS delivers via the SMS gateway only.
	ChannelSMS Channel = "sms"

	// ChannelAll delivers via every configured gateway.
	ChannelAll Channel = "*"
)

// WantsPush reports whether the channel includes push delivery.
func (c Channel) WantsPush() bool {
	return c == ChannelPush || c == ChannelAll
}

// WantsSMS reports whether the channel includes SMS delivery.
func (c Channel) WantsSMS() bool {
	return c == ChannelSMS || c == ChannelAll
}

// Notification is the payload of a single delivery attempt to one user.
type Notification struct {
	JobID     kernel.UUID
	Title     string
	Body      string
	PushToken string
	Phone     string
}

// DeliveryResult records the outcome of one delivery attempt. A failed
// attempt is a result with Sent=false and a Reason; delivery failures are
// never surfaced as errors from the fan-out.
type DeliveryResult struct {
	UserID  kernel.UUID
	Channel Channel
	Sent    bool
	Reason  string
}

// PushSender delivers push notifications through an external gateway.
type PushSender interface {
	// SendPush delivers one push notification. The context carries the
	// per-attempt timeout.
	SendPush(ctx context.Context, notification Notification) error
}

// SMSSender delivers text messages through an external gateway.
type SMSSender interface {
	// SendSMS delivers one text message. The context carries the
	// per-attempt timeout.
	SendSMS(ctx context.Context, notification Notification) error
}
