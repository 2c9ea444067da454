package voyage_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"voyage/internal/entities"
	"voyage/pkg/logger"
)

const TopicVoyageCreated = "voyage.created"

type createdEvent struct {
	VoyageID           string    `json:"voyageId"`
	PortOfLoading      string    `json:"portOfLoading"`
	PortOfDischarge    string    `json:"portOfDischarge"`
	VesselID           string    `json:"vesselId"`
	ScheduledDeparture time.Time `json:"scheduledDeparture"`
	ScheduledArrival   time.Time `json:"scheduledArrival"`
}

// Publisher шлет событие voyage.created после коммита рейса. Сбой
// публикации логируется здесь и не влияет на уже созданный рейс.
type Publisher struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func New(log logger.Logger, producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) VoyageCreated(ctx context.Context, voyageEntity entities.Voyage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish voyage.created: %w", err)
	}

	event := createdEvent{
		VoyageID:           voyageEntity.ID,
		PortOfLoading:      voyageEntity.PortOfLoading.String(),
		PortOfDischarge:    voyageEntity.PortOfDischarge.String(),
		VesselID:           voyageEntity.VesselID,
		ScheduledDeparture: voyageEntity.ScheduledDeparture,
		ScheduledArrival:   voyageEntity.ScheduledArrival,
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.log.Error("voyage.created marshal failed",
			logger.NewField("voyage", voyageEntity.ID),
			logger.NewField("error", err),
		)
		return fmt.Errorf("marshal voyage.created: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(voyageEntity.ID),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		p.log.Error("voyage.created publish failed",
			logger.NewField("voyage", voyageEntity.ID),
			logger.NewField("error", err),
		)
		return fmt.Errorf("publish voyage.created: %w", err)
	}

	p.log.Info("voyage.created published",
		logger.NewField("voyage", voyageEntity.ID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}
