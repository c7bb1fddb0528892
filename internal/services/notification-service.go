package services

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/rafif143/basket/internal/dto"
	"github.com/rafif143/basket/pkg/whatsapp"
)

// NotificationService consumes registration.created events and prepares the
// personalized WhatsApp contact link for the on-call admin.
type NotificationService struct {
	settings SettingsService
}

func NewNotificationService(settings SettingsService) *NotificationService {
	return &NotificationService{settings: settings}
}

func (s *NotificationService) HandleMessage(message string) error {
	var event dto.RegistrationCreatedEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		return errors.New("malformed registration event")
	}

	link := whatsapp.BuildLink(event.NoTelepon, event.Nama, s.settings.WhatsAppTemplate())
	if link == whatsapp.DisabledLink {
		log.Printf("registration %d (%s): no phone number, skip greeting", event.RegistrationID, event.Nama)
		return nil
	}

	log.Printf("registration %d (%s, %s/%s): greeting ready %s",
		event.RegistrationID, event.Nama, event.Fakultas, event.ProgramStudi, link)
	return nil
}
