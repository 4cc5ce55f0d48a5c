package dto

// RoomResponse là DTO cho response thông tin phòng
type RoomResponse struct {
	RoomNumber    int      `json:"roomNumber"`
	Type          string   `json:"type"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"pricePerNight"`
	Available     bool     `json:"available"`
}

// RoomSearchResponse là DTO cho response tìm phòng theo loại.
// Suggestion chỉ có giá trị khi không tìm thấy phòng nào khớp
type RoomSearchResponse struct {
	Data       []RoomResponse `json:"data"`
	Suggestion string         `json:"suggestion,omitempty"`
}
