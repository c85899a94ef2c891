package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/api"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/config"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/bootstrap"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/cache"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/domain"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/kafka"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/payment"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/repository"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/booking"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/tours"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		tourRepo    repository.TourRepository
		bookingRepo repository.BookingRepository
		userRepo    repository.UserRepository
	)
	if cfg.Database.Host != "" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		tourRepo = repository.NewTourRepository(pool)
		bookingRepo = repository.NewBookingRepository(pool)
		userRepo = repository.NewUserRepository(pool)
	} else {
		// Development stand-in: in-memory stores seeded with demo data.
		log.Println("no database configured, running on in-memory repositories")
		memTours := repository.NewMemoryTourRepository()
		memUsers := repository.NewMemoryUserRepository()
		seedDemoData(ctx, memTours, memUsers)
		tourRepo = memTours
		bookingRepo = repository.NewMemoryBookingRepository()
		userRepo = memUsers
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.ToursCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	checkoutBase := os.Getenv("CHECKOUT_BASE_URL")
	if checkoutBase == "" {
		checkoutBase = "http://localhost:8080"
	}
	payments := payment.NewMockProvider(checkoutBase, 30*time.Minute)

	tourService := tours.NewTourService(tourRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		tourRepo,
		payments,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithServiceFeePercent(cfg.Booking.ServiceFeePercent),
		booking.WithRefundPercent(cfg.Booking.RefundPercent),
	)

	tourHandler := api.NewTourHandler(tourService)
	bookingHandler := api.NewBookingHandler(bookingService)
	paymentHandler := api.NewPaymentHandler(bookingService, redisCache, time.Duration(cfg.Booking.WebhookDedupTTL)*time.Minute)
	userHandler := api.NewUserHandler(userRepo)

	if err := bootstrap.Run(ctx, cfg, tourHandler, bookingHandler, paymentHandler, userHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func seedDemoData(ctx context.Context, tourRepo *repository.MemoryTourRepository, userRepo *repository.MemoryUserRepository) {
	demo := []domain.Tour{
		{
			ID:              "t-lisbon-food",
			HostID:          "h-ana",
			Title:           "Lisbon Food & Wine Walk",
			Description:     "Tastings across Alfama and Baixa with a local guide.",
			Location:        "Lisbon",
			PriceCents:      6500,
			Currency:        "EUR",
			DurationHours:   3,
			Rating:          4.8,
			ReviewCount:     214,
			MaxParticipants: 8,
			Difficulty:      domain.DifficultyEasy,
			Tags:            []string{"food", "walking", "wine"},
		},
		{
			ID:                 "t-sintra-hike",
			HostID:             "h-ana",
			Title:              "Sintra Hills Hike",
			Description:        "Full-day hike through the Sintra-Cascais natural park.",
			Location:           "Sintra",
			PriceCents:         9000,
			OriginalPriceCents: 11000,
			Currency:           "EUR",
			DurationHours:      7,
			Rating:             4.6,
			ReviewCount:        98,
			MaxParticipants:    12,
			Difficulty:         domain.DifficultyChallenging,
			Tags:               []string{"hiking", "nature"},
		},
		{
			ID:              "t-porto-river",
			HostID:          "h-joao",
			Title:           "Douro River Sunset Cruise",
			Description:     "Evening cruise with port tasting on board.",
			Location:        "Porto",
			PriceCents:      4500,
			Currency:        "EUR",
			DurationHours:   2,
			Rating:          4.9,
			ReviewCount:     402,
			MaxParticipants: 20,
			Difficulty:      domain.DifficultyEasy,
			Tags:            []string{"boat", "wine", "sunset"},
		},
	}
	for i := range demo {
		if err := tourRepo.Create(ctx, &demo[i]); err != nil {
			log.Printf("seed tour %s: %v", demo[i].ID, err)
		}
	}

	hosts := []domain.User{
		{ID: "h-ana", Name: "Ana Ribeiro", Email: "ana@traveltrek.dev", Role: domain.UserRoleHost},
		{ID: "h-joao", Name: "Joao Mendes", Email: "joao@traveltrek.dev", Role: domain.UserRoleHost},
	}
	for i := range hosts {
		if err := userRepo.Create(ctx, &hosts[i]); err != nil {
			log.Printf("seed user %s: %v", hosts[i].ID, err)
		}
	}
}
