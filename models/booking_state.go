package models

import "errors"

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Cancel(booking *Booking) error
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CancelledState trạng thái đã hủy, không chuyển về trạng thái khác được nữa
type CancelledState struct{}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &ConfirmedState{}
	}
}
