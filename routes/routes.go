package routes

import (
	"context"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/roamstay/vacation-rental-backend/controllers"
	"github.com/roamstay/vacation-rental-backend/store"
	"github.com/roamstay/vacation-rental-backend/utils"
)

// Routes registers every endpoint. All dependencies are injected here rather
// than read from package globals so handlers can be tested with doubles.
func Routes(router *mux.Router, stores *store.Stores, redisClient *redis.Client,
	tokens *utils.JWTManager, ping func(ctx context.Context) error) {

	router.HandleFunc("/health", controllers.Health(ping)).Methods("GET")

	// Users
	router.HandleFunc("/users", controllers.CreateUser(stores.Users)).Methods("POST")
	router.HandleFunc("/users", controllers.GetUser(stores.Users)).
		Queries("email", "{email}").Methods("GET")
	router.HandleFunc("/users/{email}", controllers.GetUser(stores.Users)).Methods("GET")
	router.HandleFunc("/all-users", controllers.GetAllUsers(stores.Users)).Methods("GET")
	router.HandleFunc("/users/{id}", controllers.UpdateUserRole(stores.Users)).Methods("PATCH")
	router.HandleFunc("/update-user/{id}", controllers.UpdateUserRole(stores.Users)).Methods("PATCH", "PUT")
	router.HandleFunc("/users/{id}", controllers.DeleteUser(stores.Users)).Methods("DELETE")
	router.HandleFunc("/login", controllers.Login(stores.Users, tokens)).Methods("POST")

	// Bookings
	router.HandleFunc("/bookings", controllers.UpsertBooking(stores.Bookings)).Methods("PUT")
	router.HandleFunc("/bookings", controllers.GetBookings(stores.Bookings)).Methods("GET")
	router.HandleFunc("/bookings/{id}", controllers.DeleteBooking(stores.Bookings)).Methods("DELETE")

	// Resorts
	router.HandleFunc("/resorts", controllers.AddResort(stores.Resorts, redisClient)).Methods("POST")
	router.HandleFunc("/resorts", controllers.GetResorts(stores.Resorts, redisClient)).Methods("GET")
	router.HandleFunc("/resorts/{id}", controllers.GetResortByID(stores.Resorts)).Methods("GET")

	// Properties. /add-property is kept for existing callers.
	router.HandleFunc("/add-property", controllers.AddProperty(stores.Properties, redisClient)).Methods("POST")
	router.HandleFunc("/add-property", controllers.GetProperties(stores.Properties, redisClient)).Methods("GET")
	router.HandleFunc("/properties", controllers.GetProperties(stores.Properties, redisClient)).Methods("GET")

	// Yearly earnings
	router.HandleFunc("/yearly-earnings", controllers.UpsertEarnings(stores.Earnings)).Methods("PUT")
	router.HandleFunc("/yearly-earnings", controllers.GetEarnings(stores.Earnings)).Methods("GET")
	router.HandleFunc("/yearly-earnings/{year}", controllers.GetEarningsByYear(stores.Earnings)).Methods("GET")
}
