package services

import (
	"stay/models"
	"stay/services/notification"
)

// SendConfirmation gửi thông báo xác nhận booking cho khách
func (s *NotificationService) SendConfirmation(booking *models.Booking) error {
	return s.send(booking, "confirmed")
}

// SendCancellation gửi thông báo hủy booking cho khách
func (s *NotificationService) SendCancellation(booking *models.Booking) error {
	return s.send(booking, "cancelled")
}

func (s *NotificationService) send(booking *models.Booking, event string) error {
	email := ""
	if booking.Guest != nil {
		email = booking.Guest.Email
	}

	message := notification.NewBookingMessageBuilder(email, booking.RoomNumber, event).Build()
	s.logger.Info("%s", message)
	return s.sender.SendMessage(message)
}
