package services

import (
	"context"
	"strings"
	"time"

	"stay/models"
	"stay/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// RoomCacheKey là cache key cho danh sách phòng
const RoomCacheKey = "rooms:catalog"

const roomCacheTTL = 60 * time.Minute

// RoomService xử lý logic liên quan đến danh mục phòng
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRoomService(db *gorm.DB, rdb *redis.Client) *RoomService {
	return &RoomService{
		db:     db,
		rdb:    rdb,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

// EnsureCatalog seed danh mục phòng mặc định nếu bảng còn trống
func (s *RoomService) EnsureCatalog() error {
	var count int64
	if err := s.db.Model(&models.Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rooms := []models.Room{
		{RoomNumber: 101, Type: "Single", Amenities: []string{"WiFi", "TV"}, PricePerNight: 100, Available: true},
		{RoomNumber: 102, Type: "Double", Amenities: []string{"WiFi", "TV", "Mini-bar"}, PricePerNight: 150, Available: true},
		{RoomNumber: 201, Type: "Suite", Amenities: []string{"WiFi", "TV", "Mini-bar", "Jacuzzi"}, PricePerNight: 250, Available: true},
	}
	if err := s.db.Create(&rooms).Error; err != nil {
		return err
	}
	s.logger.Info("Đã seed %d phòng vào danh mục", len(rooms))
	return nil
}

// GetAllRooms lấy toàn bộ danh mục phòng, ưu tiên đọc từ cache
func (s *RoomService) GetAllRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room

	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, RoomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	if err := s.db.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, RoomCacheKey, rooms, roomCacheTTL); err != nil {
			s.logger.Error("Lỗi khi lưu danh mục phòng vào Redis: %v", err)
		}
	}

	return rooms, nil
}

// SearchAvailable tìm các phòng còn trống theo loại phòng.
// Khi không có phòng nào khớp, trả về gợi ý loại phòng gần giống nhất
func (s *RoomService) SearchAvailable(ctx context.Context, roomType string) ([]models.Room, string, error) {
	rooms, err := s.GetAllRooms(ctx)
	if err != nil {
		return nil, "", err
	}

	matched := FilterRooms(rooms, roomType)
	if len(matched) > 0 {
		return matched, "", nil
	}

	suggestion := SuggestRoomType(roomType, KnownRoomTypes(rooms))
	return nil, suggestion, nil
}

// GetByNumber lấy phòng theo số phòng
func (s *RoomService) GetByNumber(roomNumber int) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, "room_number = ?", roomNumber).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// RefreshRoomCache làm mới cache danh mục phòng từ cơ sở dữ liệu
func (s *RoomService) RefreshRoomCache() error {
	ctx := context.Background()

	if s.rdb != nil {
		if err := DeleteFromRedis(ctx, s.rdb, RoomCacheKey); err != nil {
			return err
		}
	}

	_, err := s.GetAllRooms(ctx)
	return err
}

// InvalidateRoomCache xóa cache danh mục phòng, gọi sau khi trạng thái phòng thay đổi
func (s *RoomService) InvalidateRoomCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.rdb, RoomCacheKey); err != nil {
		s.logger.Error("Lỗi khi xóa cache danh mục phòng: %v", err)
	}
}

// FilterRooms lọc phòng theo loại (không phân biệt hoa thường) và còn trống
func FilterRooms(rooms []models.Room, roomType string) []models.Room {
	var matched []models.Room
	for _, room := range rooms {
		if strings.EqualFold(room.Type, roomType) && room.IsAvailable() {
			matched = append(matched, room)
		}
	}
	return matched
}

// KnownRoomTypes trả về danh sách loại phòng duy nhất trong danh mục
func KnownRoomTypes(rooms []models.Room) []string {
	seen := make(map[string]bool)
	var types []string
	for _, room := range rooms {
		if !seen[room.Type] {
			seen[room.Type] = true
			types = append(types, room.Type)
		}
	}
	return types
}

// SuggestRoomType gợi ý loại phòng gần giống nhất với chuỗi nhập vào.
// Trả về chuỗi rỗng nếu không có loại nào đủ gần
func SuggestRoomType(input string, knownTypes []string) string {
	if len(knownTypes) == 0 {
		return ""
	}

	normalized := normalizeKeyword(input)

	normalizedTypes := make([]string, len(knownTypes))
	byNormalized := make(map[string]string, len(knownTypes))
	for i, t := range knownTypes {
		nt := normalizeKeyword(t)
		normalizedTypes[i] = nt
		byNormalized[nt] = t
	}

	cm := closestmatch.New(normalizedTypes, []int{2, 3})
	closest := cm.Closest(normalized)
	if closest == "" {
		return ""
	}

	distance := levenshtein.DistanceForStrings([]rune(normalized), []rune(closest), levenshtein.DefaultOptions)
	if distance > 2 {
		return ""
	}

	return byNormalized[closest]
}

// normalizeKeyword bỏ dấu và chuyển chuỗi về chữ thường
func normalizeKeyword(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}
