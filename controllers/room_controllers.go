package controllers

import (
	"strconv"

	"stay/dto"
	"stay/models"
	"stay/response"
	"stay/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	roomService *services.RoomService
}

func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

func convertToRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomNumber:    room.RoomNumber,
		Type:          room.Type,
		Amenities:     room.Amenities,
		PricePerNight: room.PricePerNight,
		Available:     room.Available,
	}
}

// GetAllRooms lấy toàn bộ danh mục phòng
// @Summary Danh mục phòng
// @Tags rooms
// @Produce json
// @Success 200 {object} response.Response
// @Router /rooms [get]
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	rooms, err := ctrl.roomService.GetAllRooms(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	data := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, convertToRoomResponse(room))
	}

	response.Success(c, data)
}

// SearchRooms tìm phòng còn trống theo loại phòng (không phân biệt hoa thường).
// Khi không có phòng nào khớp, trả về gợi ý loại phòng gần giống nhất nếu có
// @Summary Tìm phòng trống theo loại
// @Tags rooms
// @Produce json
// @Param type query string true "Loại phòng (Single/Double/Suite)"
// @Success 200 {object} response.Response
// @Router /rooms/search [get]
func (ctrl *RoomController) SearchRooms(c *gin.Context) {
	roomType := c.Query("type")
	if roomType == "" {
		response.BadRequest(c, "type là bắt buộc")
		return
	}

	rooms, suggestion, err := ctrl.roomService.SearchAvailable(c.Request.Context(), roomType)
	if err != nil {
		response.ServerError(c)
		return
	}

	result := dto.RoomSearchResponse{
		Data:       make([]dto.RoomResponse, 0, len(rooms)),
		Suggestion: suggestion,
	}
	for _, room := range rooms {
		result.Data = append(result.Data, convertToRoomResponse(room))
	}

	if len(result.Data) == 0 {
		response.SuccessWithMessage(c, "Không tìm thấy phòng trống", result)
		return
	}

	response.Success(c, result)
}

// GetRoomDetail lấy thông tin phòng theo số phòng
// @Summary Chi tiết phòng
// @Tags rooms
// @Produce json
// @Param number path int true "Số phòng"
// @Success 200 {object} response.Response
// @Router /rooms/{number} [get]
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	roomNumber, err := strconv.Atoi(c.Param("number"))
	if err != nil || roomNumber <= 0 {
		response.BadRequest(c, "Số phòng không hợp lệ")
		return
	}

	room, err := ctrl.roomService.GetByNumber(roomNumber)
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToRoomResponse(*room))
}
