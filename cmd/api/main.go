package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mactanair/airline-backend/internal/database"
	"github.com/mactanair/airline-backend/internal/handlers"
	"github.com/mactanair/airline-backend/internal/middleware"
	"github.com/mactanair/airline-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	database.SeedDatabase(db)

	// Redis backs the per-flight seat locks; the service degrades to the
	// database guard alone when it is unavailable.
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	}

	adminCodes := strings.Split(envOrDefault("ADMIN_CODES", "admin111,admin222"), ",")
	for i := range adminCodes {
		adminCodes[i] = strings.TrimSpace(adminCodes[i])
	}

	accounts := services.NewAccountService(db, adminCodes)
	cities := services.NewCityService(db)
	flights := services.NewFlightService(db)
	reservations := services.NewReservationService(db)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Public routes
	r.GET("/flights/", handlers.ListFlights(flights))
	r.GET("/get_flight/:id/", handlers.GetFlight(flights))
	r.POST("/search/", handlers.SearchFlights(flights))
	r.POST("/result/", handlers.SearchResult())

	r.GET("/cities/", handlers.ListCities(cities))
	r.GET("/get_city/:id/", handlers.GetCity(cities))

	r.POST("/register/", handlers.Register(accounts))
	r.POST("/login/", handlers.Login(accounts))
	r.POST("/register/admin/", handlers.RegisterAdmin(accounts))
	r.POST("/login/admin/", handlers.AdminLogin(accounts))

	r.GET("/reservationlist/", handlers.ListReservations(reservations))
	r.GET("/get_reservation/:id/", handlers.GetReservation(reservations))
	r.PUT("/edit_reservation/:id/", handlers.EditReservation(reservations))
	r.DELETE("/delete_reservation/:id/", handlers.DeleteReservation(reservations))

	// Token-protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(accounts))
	{
		protected.POST("/createreservation/", handlers.CreateReservation(reservations))
		protected.POST("/reservation/", handlers.CreateReservationNested(reservations))
		protected.GET("/user_reservations/", handlers.UserReservations(reservations))
		protected.POST("/logout/", handlers.Logout(accounts))
		protected.GET("/api/user-data/", handlers.UserData(accounts))
	}

	// Staff-gated management surface
	staff := r.Group("/")
	staff.Use(middleware.AuthMiddleware(accounts), middleware.RequireStaff())
	{
		staff.POST("/addcity/", handlers.AddCity(cities))
		staff.PUT("/edit_city/:id/", handlers.EditCity(cities))
		staff.DELETE("/delete_city/:id/", handlers.DeleteCity(cities))

		staff.POST("/addflight/", handlers.AddFlight(flights))
		staff.PUT("/edit_flight/:id/", handlers.EditFlight(flights))
		staff.DELETE("/delete_flight/:id/", handlers.DeleteFlight(flights))

		staff.GET("/api/auth_users/", handlers.ListAuthUsers(accounts))
		staff.GET("/api/passengers/", handlers.ListPassengers(accounts))
		staff.POST("/api/staff_status/:id/", handlers.ToggleStaffStatus(accounts))
		staff.POST("/api/active_status/:id/", handlers.ToggleActiveStatus(accounts))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func envOrDefault(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
