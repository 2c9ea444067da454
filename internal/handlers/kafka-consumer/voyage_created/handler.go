package voyage_created

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"voyage/pkg/logger"
)

type createdEvent struct {
	VoyageID           string    `json:"voyageId"`
	PortOfLoading      string    `json:"portOfLoading"`
	PortOfDischarge    string    `json:"portOfDischarge"`
	VesselID           string    `json:"vesselId"`
	ScheduledDeparture time.Time `json:"scheduledDeparture"`
	ScheduledArrival   time.Time `json:"scheduledArrival"`
}

type Handler struct {
	voyageService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, voyageService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		voyageService:            voyageService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("voyage.created: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("voyage.created: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event createdEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("voyage.created handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("voyage", event.VoyageID),
		logger.NewField("vessel", event.VesselID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("voyage.created processing")

	count, err := h.voyageService.RefreshUpcomingDepartures(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("voyage.created handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("error", err),
		).Warn("voyage.created handler failed to refresh departures")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("upcoming", count),
	).Info("voyage.created: processed")

	sess.MarkMessage(message, "")
	return false
}
