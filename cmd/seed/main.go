// Seeds a demo tenant for local development: one operator account, the
// Smart Stay Bariloche hotel, and its link directory. Safe to re-run; the
// seed is skipped when the operator already exists.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"guestportal-service/internal/model"
	"guestportal-service/internal/store"
	"guestportal-service/pkg/config"
	"guestportal-service/pkg/database"
	"guestportal-service/pkg/logger"
	"guestportal-service/prometheus"
)

func strPtr(s string) *string { return &s }

func main() {
	_ = godotenv.Load()

	appConfig, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	prometheus.InitMetrics(appConfig)

	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	db := database.GetDB()
	users := store.NewUserRepository(db)
	hotels := store.NewHotelRepository(db)
	links := store.NewLinkRepository(db)
	ctx := context.Background()

	existing, err := users.GetByEmail(ctx, "carlos@smartstaybariloche.com")
	if err != nil {
		log.Fatal("Failed to check for demo account", zap.Error(err))
	}
	if existing != nil {
		log.Info("Demo data already present, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("bariloche2024"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash demo password", zap.Error(err))
	}

	user := &model.User{
		Name:     "Carlos Rodriguez",
		Email:    "carlos@smartstaybariloche.com",
		Password: string(hash),
		Role:     model.RoleOwner,
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatal("Failed to create demo user", zap.Error(err))
	}

	hotel := &model.Hotel{
		UserID:         user.ID,
		Name:           "Smart Stay Bariloche",
		PrimaryColor:   model.DefaultPrimaryColor,
		Address:        "Av. Bustillo Km 10, Bariloche, Argentina",
		Phone:          "+54 294 123 4567",
		Email:          "info@smartstaybariloche.com",
		Description:    "Premium lakeside hotel in the heart of Patagonia",
		WelcomeMessage: "Welcome to Smart Stay Bariloche! Discover the best of Patagonia.",
	}
	if err := hotels.Insert(ctx, hotel); err != nil {
		log.Fatal("Failed to create demo hotel", zap.Error(err))
	}

	seedLinks := []model.Link{
		{Title: "WiFi Password", URL: "https://smartstay.com/wifi", Description: strPtr("Get your room WiFi credentials"), Icon: strPtr("Wifi"), Category: model.LinkCategoryHotel},
		{Title: "Room Service Menu", URL: "https://smartstay.com/menu", Description: strPtr("Order food to your room 24/7"), Icon: strPtr("UtensilsCrossed"), Category: model.LinkCategoryHotel},
		{Title: "Spa & Wellness", URL: "https://smartstay.com/spa", Description: strPtr("Book spa treatments and massages"), Icon: strPtr("Sparkles"), Category: model.LinkCategoryHotel},
		{Title: "Ski Rentals", URL: "https://smartstay.com/ski-rentals", Description: strPtr("Rent equipment for winter sports"), Icon: strPtr("Mountain"), Category: model.LinkCategoryActivities},
		{Title: "Hiking Trails", URL: "https://smartstay.com/hiking", Description: strPtr("Explore nearby trails and paths"), Icon: strPtr("Trees"), Category: model.LinkCategoryActivities},
		{Title: "Lake Tours", URL: "https://smartstay.com/lake-tours", Description: strPtr("Boat tours on Nahuel Huapi Lake"), Icon: strPtr("Ship"), Category: model.LinkCategoryActivities},
		{Title: "Emergency Contact", URL: "tel:+542941234567", Description: strPtr("24/7 emergency assistance"), Icon: strPtr("Phone"), Category: model.LinkCategoryContact},
		{Title: "Concierge", URL: "https://smartstay.com/concierge", Description: strPtr("Chat with our concierge team"), Icon: strPtr("MessageCircle"), Category: model.LinkCategoryContact},
	}
	for i := range seedLinks {
		seedLinks[i].HotelID = hotel.ID
		seedLinks[i].OrderIndex = i + 1
		seedLinks[i].IsActive = true
		if _, err := links.Insert(ctx, &seedLinks[i]); err != nil {
			log.Fatal("Failed to create demo link",
				zap.String("title", seedLinks[i].Title),
				zap.Error(err))
		}
	}

	log.Info("Demo data seeded",
		zap.String("user_id", user.ID.String()),
		zap.String("hotel_id", hotel.ID.String()),
		zap.Int("links", len(seedLinks)))
}
