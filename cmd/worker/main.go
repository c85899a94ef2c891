package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/config"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/email"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/kafka"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/payment"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/repository"
	"github.com/AlexandraHockett/TravelTrek-Marketplace-sub000/internal/service/booking"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	tourRepo := repository.NewTourRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	payments := payment.NewMockProvider("http://localhost:8080", 30*time.Minute)
	bookingService := booking.NewBookingService(
		bookingRepo,
		tourRepo,
		payments,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithRefundPercent(cfg.Booking.RefundPercent),
	)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, emailSender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.CompletionSweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	for {
		select {
		case <-sweepTicker.C:
			completed, err := bookingService.CompletePastBookings(ctx)
			if err != nil {
				log.Printf("complete past bookings error: %v", err)
				continue
			}
			if len(completed) > 0 {
				log.Printf("completed %d past bookings", len(completed))
			}
		case <-ctx.Done():
			log.Println("shutting down worker")
			return
		}
	}
}
