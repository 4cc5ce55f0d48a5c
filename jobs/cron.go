package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// RoomCacheRefresher định nghĩa interface cho việc làm mới cache danh mục phòng
type RoomCacheRefresher interface {
	RefreshRoomCache() error
}

var roomCacheRefresher RoomCacheRefresher

// SetRoomCacheRefresher thiết lập implementation cho RoomCacheRefresher
func SetRoomCacheRefresher(refresher RoomCacheRefresher) {
	roomCacheRefresher = refresher
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job làm mới cache danh mục phòng mỗi giờ
	_, err := c.AddFunc("0 * * * *", func() {
		if roomCacheRefresher == nil {
			log.Printf("Lỗi: RoomCacheRefresher chưa được thiết lập")
			return
		}
		if err := roomCacheRefresher.RefreshRoomCache(); err != nil {
			log.Printf("Lỗi khi làm mới cache danh mục phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
