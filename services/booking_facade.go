package services

import (
	"context"
	"errors"
	"time"

	apperrors "stay/errors"
	"stay/models"
	"stay/services/logger"
	"stay/services/notification"
	"stay/validator"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// BookingFacade đơn giản hóa việc tương tác với các service,
// gom quy trình đặt phòng / hủy phòng thành một thao tác duy nhất
type BookingFacade struct {
	bookingService      *BookingService
	paymentService      *PaymentService
	notificationService *NotificationService
	roomService         *RoomService
}

// BookingService xử lý logic liên quan đến booking
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

// PaymentService xử lý logic thanh toán
type PaymentService struct {
	db *gorm.DB
}

// NotificationService xử lý logic gửi thông báo
type NotificationService struct {
	sender notification.Service
	logger logger.Logger
}

// NewBookingFacade tạo instance mới của BookingFacade
func NewBookingFacade(db *gorm.DB, roomService *RoomService, m *melody.Melody) *BookingFacade {
	return &BookingFacade{
		bookingService: &BookingService{
			db:     db,
			logger: logger.NewDefaultLogger(logger.InfoLevel),
		},
		paymentService: &PaymentService{
			db: db,
		},
		notificationService: &NotificationService{
			sender: notification.NewMelodyService(m),
			logger: logger.NewDefaultLogger(logger.InfoLevel),
		},
		roomService: roomService,
	}
}

// CreateBooking đặt phòng: kiểm tra khoảng ngày, khóa phòng, tạo booking,
// chuyển phòng sang hết trống và gắn booking vào khách trong cùng một transaction.
// Phòng đang hết trống trả về lỗi ErrRoomNotAvailable
func (f *BookingFacade) CreateBooking(guestID uint, roomNumber int, checkIn, checkOut time.Time) (*models.Booking, error) {
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	booking, err := f.bookingService.CreateWithRoomLock(guestID, roomNumber, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	f.roomService.InvalidateRoomCache(context.Background())

	// Gửi thông báo xác nhận, lỗi chỉ log chứ không làm hỏng booking
	if err := f.notificationService.SendConfirmation(booking); err != nil {
		f.bookingService.logger.Error("Lỗi gửi thông báo xác nhận booking %d: %v", booking.ID, err)
	}

	return booking, nil
}

// CancelBooking hủy booking và trả phòng về trạng thái trống.
// Booking đã hủy trả về lỗi ErrBookingCancelled
func (f *BookingFacade) CancelBooking(bookingID uint) (*models.Booking, string, error) {
	booking, message, err := f.bookingService.Cancel(bookingID)
	if err != nil {
		return nil, "", err
	}

	f.roomService.InvalidateRoomCache(context.Background())

	if err := f.notificationService.SendCancellation(booking); err != nil {
		f.bookingService.logger.Error("Lỗi gửi thông báo hủy booking %d: %v", booking.ID, err)
	}

	return booking, message, nil
}

// GenerateInvoice xuất hóa đơn cho booking. Gọi nhiều lần trả về cùng một hóa đơn
func (f *BookingFacade) GenerateInvoice(bookingID uint, allowAfterCancellation bool) (*models.Invoice, error) {
	booking, err := f.bookingService.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled && !allowAfterCancellation {
		return nil, apperrors.NewAppError(apperrors.ErrCodeBookingCancelled,
			"Không thể xuất hóa đơn cho booking đã hủy", nil)
	}

	// Hóa đơn đã xuất trước đó thì trả về luôn
	var existing models.Invoice
	err = f.bookingService.db.Where("booking_id = ?", bookingID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	invoice := booking.GenerateInvoice()
	if err := f.bookingService.db.Create(&invoice).Error; err != nil {
		return nil, err
	}

	return &invoice, nil
}

// PayInvoice thanh toán hóa đơn theo mã hóa đơn
func (f *BookingFacade) PayInvoice(invoiceCode, method string) (*models.Payment, error) {
	return f.paymentService.Pay(invoiceCode, method)
}

// GetBooking lấy booking theo ID
func (f *BookingFacade) GetBooking(bookingID uint) (*models.Booking, error) {
	return f.bookingService.GetByID(bookingID)
}

// History lấy lịch sử đặt phòng của khách theo thứ tự đặt
func (f *BookingFacade) History(guestID uint) ([]models.Booking, error) {
	return f.bookingService.History(guestID)
}
