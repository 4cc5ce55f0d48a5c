package main

import (
	"log"
	"net/http"
	"os"

	"stay/config"
	_ "stay/docs"
	"stay/routes"
	"stay/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Stay Booking API
// @version 1.0
// @description API đặt phòng khách sạn: khách, phòng, booking, hóa đơn, thanh toán
// @BasePath /api/v1
func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Seed danh mục phòng mặc định nếu bảng còn trống
	roomService := services.NewRoomService(config.DB, config.RedisClient)
	if err := roomService.EnsureCatalog(); err != nil {
		log.Fatalf("Failed to seed room catalog: %v", err)
	}

	if err := config.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
