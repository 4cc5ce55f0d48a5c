package services

import (
	"errors"
	"strings"

	apperrors "stay/errors"
	"stay/models"
	"stay/validator"

	"gorm.io/gorm"
)

// GuestService xử lý logic liên quan đến tài khoản khách
type GuestService struct {
	db *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{db: db}
}

// normalizeGuestEmail chuẩn hóa email trước khi so trùng và lưu
func normalizeGuestEmail(guest *models.Guest) {
	guest.Email = strings.TrimSpace(guest.Email)
}

// Create tạo tài khoản khách mới, email không được trùng
func (s *GuestService) Create(guest *models.Guest) error {
	if err := validator.ValidateGuest(guest); err != nil {
		return err
	}

	normalizeGuestEmail(guest)

	var count int64
	if err := s.db.Model(&models.Guest{}).Where("email = ?", guest.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrGuestAlreadyExists
	}

	if guest.LoyaltyStatus == "" {
		guest.LoyaltyStatus = "None"
	}
	return s.db.Create(guest).Error
}

// GetByID lấy khách theo ID
func (s *GuestService) GetByID(guestID uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}
