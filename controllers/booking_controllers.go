package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"stay/dto"
	apperrors "stay/errors"
	"stay/models"
	"stay/response"
	"stay/services"

	"github.com/gin-gonic/gin"
)

// DateLayout là định dạng ngày của check-in / check-out
const DateLayout = "2006-01-02"

type BookingController struct {
	facade *services.BookingFacade
}

func NewBookingController(facade *services.BookingFacade) *BookingController {
	return &BookingController{facade: facade}
}

func convertToBookingResponse(booking *models.Booking) dto.BookingResponse {
	guestName := ""
	if booking.Guest != nil {
		guestName = booking.Guest.Name
	}
	return dto.BookingResponse{
		ID:           booking.ID,
		GuestID:      booking.GuestID,
		GuestName:    guestName,
		RoomNumber:   booking.RoomNumber,
		RoomType:     booking.Room.Type,
		CheckInDate:  booking.CheckInDate.Format(DateLayout),
		CheckOutDate: booking.CheckOutDate.Format(DateLayout),
		Status:       booking.GetStatus(),
		Nights:       booking.Nights(),
		TotalPrice:   float64(booking.Nights()) * booking.Room.PricePerNight,
	}
}

// handleServiceError map lỗi từ tầng service sang response tương ứng
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrGuestNotFound),
		errors.Is(err, apperrors.ErrRoomNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrInvoiceNotFound):
		response.NotFound(c)
	case errors.Is(err, apperrors.ErrRoomNotAvailable):
		response.Conflict(c, "Phòng đã được đặt")
	case errors.Is(err, apperrors.ErrBookingCancelled):
		response.BadRequest(c, "Booking đã được hủy trước đó")
	case errors.Is(err, apperrors.ErrInvoiceAlreadyPaid):
		response.BadRequest(c, "Hóa đơn đã được thanh toán")
	case errors.Is(err, apperrors.ErrGuestAlreadyExists):
		response.Conflict(c, "Email đã được đăng ký")
	default:
		if appErr := apperrors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		log.Printf("Lỗi không xác định: %v", err)
		response.ServerError(c)
	}
}

// CreateBooking đặt phòng cho khách
// @Summary Đặt phòng
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body dto.CreateBookingRequest true "Thông tin đặt phòng"
// @Success 200 {object} response.Response
// @Router /bookings [post]
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	checkIn, err := time.Parse(DateLayout, req.CheckInDate)
	if err != nil {
		response.BadRequest(c, "Ngày check-in không hợp lệ, vui lòng sử dụng định dạng YYYY-MM-DD")
		return
	}

	checkOut, err := time.Parse(DateLayout, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, "Ngày check-out không hợp lệ, vui lòng sử dụng định dạng YYYY-MM-DD")
		return
	}

	booking, err := ctrl.facade.CreateBooking(req.GuestID, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := "Đã xác nhận đặt phòng " + strconv.Itoa(booking.RoomNumber)
	response.SuccessWithMessage(c, message, convertToBookingResponse(booking))
}

// GetBooking lấy thông tin booking theo ID
// @Summary Lấy thông tin booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Router /bookings/{id} [get]
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID <= 0 {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, err := ctrl.facade.GetBooking(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// CancelBooking hủy booking, phòng tương ứng trống trở lại
// @Summary Hủy booking
// @Tags bookings
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response
// @Router /bookings/{id}/cancel [put]
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil || bookingID <= 0 {
		response.BadRequest(c, "ID booking không hợp lệ")
		return
	}

	booking, message, err := ctrl.facade.CancelBooking(uint(bookingID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.CancelBookingResponse{
		ID:      booking.ID,
		Status:  booking.GetStatus(),
		Message: message,
	})
}
