package controllers

import (
	"strconv"

	"stay/dto"
	"stay/models"
	"stay/response"
	"stay/services"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	guestService *services.GuestService
	facade       *services.BookingFacade
}

func NewGuestController(guestService *services.GuestService, facade *services.BookingFacade) *GuestController {
	return &GuestController{
		guestService: guestService,
		facade:       facade,
	}
}

func convertToGuestResponse(guest *models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:            guest.ID,
		Name:          guest.Name,
		Email:         guest.Email,
		ContactNumber: guest.ContactNumber,
		LoyaltyStatus: guest.LoyaltyStatus,
		CreatedAt:     guest.CreatedAt,
	}
}

// CreateGuest tạo tài khoản khách mới
// @Summary Tạo tài khoản khách
// @Tags guests
// @Accept json
// @Produce json
// @Param guest body dto.CreateGuestRequest true "Thông tin khách"
// @Success 200 {object} response.Response
// @Router /guests [post]
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	guest := models.Guest{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		LoyaltyStatus: req.LoyaltyStatus,
	}

	if err := ctrl.guestService.Create(&guest); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Đã tạo tài khoản cho khách "+guest.Name, convertToGuestResponse(&guest))
}

// GetGuestByID lấy thông tin khách theo ID
// @Summary Lấy thông tin khách
// @Tags guests
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Response
// @Router /guests/{id} [get]
func (ctrl *GuestController) GetGuestByID(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil || guestID <= 0 {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	guest, err := ctrl.guestService.GetByID(uint(guestID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, convertToGuestResponse(guest))
}

// GetReservationHistory lấy lịch sử đặt phòng của khách theo thứ tự đặt
// @Summary Lịch sử đặt phòng của khách
// @Tags guests
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Response
// @Router /guests/{id}/reservations [get]
func (ctrl *GuestController) GetReservationHistory(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("id"))
	if err != nil || guestID <= 0 {
		response.BadRequest(c, "ID khách không hợp lệ")
		return
	}

	bookings, err := ctrl.facade.History(uint(guestID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	history := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		history = append(history, convertToBookingResponse(&booking))
	}

	response.Success(c, history)
}
