package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type BookingMessageBuilder struct {
	email      string
	roomNumber int
	event      string
}

func NewBookingMessageBuilder(email string, roomNumber int, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		email:      email,
		roomNumber: roomNumber,
		event:      event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Notification sent to %s: Booking for room %d %s.", b.email, b.roomNumber, b.event)
}
