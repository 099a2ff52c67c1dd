package service

import (
	"context"
	"encoding/json"
	"log"

	"meeting-minutes-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	summaryService ISummaryService
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	summaryService ISummaryService,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		summaryService: summaryService,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSummaryJobMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal summary job message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing summary job for MeetingId: %s", payload.MeetingId)

	// RunJob records its own outcome on the job row, including panics
	// and total failure, so the message is always acked: redelivery
	// would just re-run a job that already has a verdict.
	if err := cs.summaryService.RunJob(ctx, payload.MeetingId); err != nil {
		log.Printf("[ERROR] Summary job for meeting %s finished with error: %v", payload.MeetingId, err)
	}

	msg.Ack()
}
