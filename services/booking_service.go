package services

import (
	"errors"
	"time"

	"stay/builders"
	"stay/commands"
	apperrors "stay/errors"
	"stay/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Validate kiểm tra tính hợp lệ của booking
func (s *BookingService) Validate(booking *models.Booking) error {
	if booking.GuestID == 0 {
		return errors.New("guest ID is required")
	}
	if booking.RoomNumber == 0 {
		return errors.New("room number is required")
	}
	return nil
}

// ensureBookable kiểm tra phòng còn trống trước khi tạo booking
func ensureBookable(room *models.Room) error {
	if !room.IsAvailable() {
		return apperrors.ErrRoomNotAvailable
	}
	return nil
}

// CreateWithRoomLock tạo booking trong một transaction: khóa bản ghi phòng,
// kiểm tra còn trống, tạo booking rồi chuyển phòng sang hết trống
func (s *BookingService) CreateWithRoomLock(guestID uint, roomNumber int, checkIn, checkOut time.Time) (*models.Booking, error) {
	var booking *models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGuestNotFound
			}
			return err
		}

		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "room_number = ?", roomNumber).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoomNotFound
			}
			return err
		}

		if err := ensureBookable(&room); err != nil {
			return err
		}

		b := builders.NewBookingBuilder().
			WithGuest(guestID).
			WithRoom(roomNumber).
			WithStay(checkIn, checkOut).
			WithStatus(models.BookingStatusConfirmed).
			Build()

		if err := s.Validate(b); err != nil {
			return err
		}

		if err := commands.NewCreateBookingCommand(b, tx).Execute(); err != nil {
			return err
		}

		room.SetAvailable(false)
		if err := tx.Save(&room).Error; err != nil {
			return err
		}

		b.Guest = &guest
		b.Room = room
		guest.AddReservation(*b)

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo booking %d cho phòng %d", booking.ID, booking.RoomNumber)
	return booking, nil
}

// GetByID lấy booking theo ID kèm thông tin khách và phòng
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Guest").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// Cancel hủy booking theo state machine và trả phòng về trạng thái trống,
// cả hai cập nhật nằm trong cùng một transaction
func (s *BookingService) Cancel(bookingID uint) (*models.Booking, string, error) {
	var (
		booking models.Booking
		message string
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Guest").Preload("Room").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBookingNotFound
			}
			return err
		}

		msg, err := booking.Cancel()
		if err != nil {
			return apperrors.ErrBookingCancelled
		}
		message = msg

		if err := commands.NewUpdateBookingCommand(&booking, tx).Execute(); err != nil {
			return err
		}

		return tx.Save(&booking.Room).Error
	})
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("Đã hủy booking %d, phòng %d trống trở lại", booking.ID, booking.RoomNumber)
	return &booking, message, nil
}

// History lấy danh sách booking của khách theo thứ tự đặt (cũ trước, mới sau)
func (s *BookingService) History(guestID uint) ([]models.Booking, error) {
	var guest models.Guest
	if err := s.db.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}

	var bookings []models.Booking
	if err := s.db.Preload("Room").
		Where("guest_id = ?", guestID).
		Order("id").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
