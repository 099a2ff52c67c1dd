package bootstrap

import (
	"log"
	"time"

	"meeting-minutes-be/internal/config"
	"meeting-minutes-be/internal/controller"
	"meeting-minutes-be/internal/pkg/logger"
	"meeting-minutes-be/internal/repository/unitofwork"
	"meeting-minutes-be/internal/service"
	pktNats "meeting-minutes-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SummaryController controller.ISummaryController
	MeetingController controller.IMeetingController
	ConfigController  controller.IConfigController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	SummaryService  service.ISummaryService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS is optional: summarization works without it, external
	// consumers just miss the completion events.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Services
	configService := service.NewConfigService(uowFactory, cfg, sysLogger)
	publisherService := service.NewPublisherService(cfg.Summary.TopicName, pubSub)

	summaryService := service.NewSummaryService(
		uowFactory,
		publisherService,
		configService,
		natsPub,
		sysLogger,
		service.SummaryOptions{
			DefaultChunkSize: cfg.Summary.ChunkSize,
			DefaultOverlap:   cfg.Summary.Overlap,
			MaxAttempts:      cfg.Summary.MaxAttempts,
			Workers:          cfg.Summary.Workers,
			CallTimeout:      time.Duration(cfg.Summary.CallTimeoutSec) * time.Second,
		},
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Summary.TopicName,
		summaryService,
	)

	meetingService := service.NewMeetingService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		SummaryController: controller.NewSummaryController(summaryService),
		MeetingController: controller.NewMeetingController(meetingService),
		ConfigController:  controller.NewConfigController(configService),

		ConsumerService: consumerService,
		SummaryService:  summaryService,
	}
}
