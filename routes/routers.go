package routes

import (
	"stay/controllers"
	"stay/jobs"
	"stay/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, m *melody.Melody) {

	roomService := services.NewRoomService(db, redisCli)
	guestService := services.NewGuestService(db)
	facade := services.NewBookingFacade(db, roomService, m)

	jobs.SetRoomCacheRefresher(roomService)

	guestController := controllers.NewGuestController(guestService, facade)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(facade)
	invoiceController := controllers.NewInvoiceController(facade)
	paymentController := controllers.NewPaymentController(facade)

	v1 := router.Group("/api/v1")

	v1.POST("/guests", guestController.CreateGuest)
	v1.GET("/guests/:id", guestController.GetGuestByID)
	v1.GET("/guests/:id/reservations", guestController.GetReservationHistory)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.GET("/rooms/:number", roomController.GetRoomDetail)

	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings/:id", bookingController.GetBooking)
	v1.PUT("/bookings/:id/cancel", bookingController.CancelBooking)
	v1.POST("/bookings/:id/invoice", invoiceController.GenerateInvoice)

	v1.POST("/payments", paymentController.CreatePayment)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
