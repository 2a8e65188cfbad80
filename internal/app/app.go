package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openpago/payments-core/config"
	"github.com/openpago/payments-core/internal/database"
	handlers "github.com/openpago/payments-core/internal/handlers"
	"github.com/openpago/payments-core/internal/models"
	"github.com/openpago/payments-core/internal/publisher"
	"github.com/openpago/payments-core/internal/repository/posgrest"
	"github.com/openpago/payments-core/internal/service"
	"github.com/openpago/payments-core/internal/subscriber"
	"github.com/openpago/payments-core/internal/worker"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Payment{},
		&models.PaymentEvent{},
		&models.PaymentAttempt{},
		&models.Refund{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if err := database.SeedAccounts(db); err != nil {
		log.Fatalf("failed to seed accounts: %v", err)
	}

	paymentRepo := posgrest.NewPaymentRepository(db)
	accountRepo := posgrest.NewAccountRepository(db)
	eventRepo := posgrest.New[models.PaymentEvent](db)
	attemptRepo := posgrest.New[models.PaymentAttempt](db)
	refundRepo := posgrest.New[models.Refund](db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	kafkaPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	clock := service.SystemClock{}
	ledger := service.NewLedgerService(accountRepo)
	registry := service.NewMethodRegistry(&service.AllowlistCardValidator{
		Prefixes: strings.Split(cfg.Payments.CardBINAllowlist, ","),
	})
	attempts := service.NewAttemptTracker(attemptRepo, clock)
	paymentService := service.NewPaymentService(
		paymentRepo, eventRepo, attempts, ledger, registry, kafkaPublisher, clock,
		service.CancelApprovedPolicy(cfg.Payments.CancelApprovedPolicy),
	)
	refundService := service.NewRefundService(refundRepo, paymentRepo, eventRepo, ledger, kafkaPublisher, clock)

	paymentHandler := handlers.NewPaymentHandler(paymentService, attempts)
	refundHandler := handlers.NewRefundHandler(refundService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler, refundHandler)

	a.initSimulator(paymentRepo, paymentService)
	a.initSubscribers(paymentHandler, kafkaPublisher)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSimulator(paymentRepo *posgrest.PaymentRepository, paymentService *service.PaymentService) {
	outcome := &worker.RandomOutcome{
		ApprovalPercent: a.config.Simulator.ApprovalPercent,
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	simulator := worker.NewBankSimulator(
		paymentRepo,
		paymentService,
		outcome,
		service.SystemClock{},
		a.config.Simulator.Interval,
		a.config.Simulator.DwellWindow,
	)
	go simulator.Run(context.Background())
}

func (a *App) initSubscribers(paymentHandler *handlers.PaymentHandler, kafkaPublisher *publisher.KafkaPublisher) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.PaymentsConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, kafkaPublisher, a.config.Kafka.GetRetryConfig())

	ctx := context.Background()
	consumer.Listen(ctx, func(topic string, value []byte) error {
		logrus.WithField("topic", topic).Debug("received message")
		if err := paymentHandler.HandleEvents(context.Background(), topic, value); err != nil {
			logrus.Error(err.Error())
			return err
		}
		return nil
	})
}
