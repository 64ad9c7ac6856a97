// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"fmt"

	"booking/internal/core/ports"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the subset of *messaging.Client the adapter needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushSender implements ports.PushSender on top of a Firebase Messaging
// client. The client is created once at startup by the composition root.
type PushSender struct {
	client messageSender
}

// NewPushSender creates a push sender bound to the given messaging client.
func NewPushSender(client messageSender) *PushSender {
	return &PushSender{client: client}
}

// SendPush delivers one push notification to the device registered under
// the notification's push token.
func (s *PushSender) SendPush(ctx context.Context, notification ports.Notification) error {
	msg := &messaging.Message{
		Token: notification.PushToken,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: map[string]string{
			"job_id": notification.JobID.String(),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "bookings",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}

	return nil
}
