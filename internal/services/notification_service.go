package services

import (
	"context"
	"log"

	"firebase.google.com/go/messaging"

	"clutchzone/internal/repositories"
)

// NotificationService pushes events to the registered admin devices over FCM.
// Client may be nil when firebase credentials are not configured.
type NotificationService struct {
	Client     *messaging.Client
	DeviceRepo *repositories.DeviceRepository
	ErrorLog   *log.Logger
}

// NotifyAdmins fans the message out to every registered device token.
// Per-token failures are logged and the rest still go out.
func (s *NotificationService) NotifyAdmins(ctx context.Context, title, body string, data map[string]string) {
	if s.Client == nil || s.DeviceRepo == nil {
		return
	}

	tokens, err := s.DeviceRepo.GetTokens(ctx)
	if err != nil {
		if s.ErrorLog != nil {
			s.ErrorLog.Printf("fcm: fetch device tokens: %v", err)
		}
		return
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
			Android: &messaging.AndroidConfig{
				Priority: "high",
				Notification: &messaging.AndroidNotification{
					ChannelID: "high_priority_channel",
				},
			},
			APNS: &messaging.APNSConfig{
				Headers: map[string]string{
					"apns-priority": "10",
				},
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Alert: &messaging.ApsAlert{
							Title: title,
							Body:  body,
						},
						Sound: "default",
					},
				},
			},
		}

		if _, err := s.Client.Send(ctx, message); err != nil && s.ErrorLog != nil {
			s.ErrorLog.Printf("fcm: send to token %s: %v", token, err)
		}
	}
}
