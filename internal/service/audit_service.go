package service

import (
	"context"
	"encoding/json"
	"time"

	"echoparse-be/internal/dto"
	"echoparse-be/internal/entity"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IAuditService interface {
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	queryLogRepo contract.QueryLogRepository
	logger       logger.ILogger
}

func NewAuditService(
	pubSub *gochannel.GoChannel,
	topicName string,
	queryLogRepo contract.QueryLogRepository,
	logger logger.ILogger,
) IAuditService {
	return &auditService{
		pubSub:       pubSub,
		topicName:    topicName,
		queryLogRepo: queryLogRepo,
		logger:       logger,
	}
}

func (as *auditService) Consume(ctx context.Context) error {
	messages, err := as.pubSub.Subscribe(ctx, as.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			as.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (as *auditService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.QueryCompletedMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		as.logger.Error("audit-service", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	queryLog := &entity.QueryLog{
		Id:           uuid.New(),
		Query:        payload.Query,
		CleanedQuery: payload.CleanedQuery,
		Intent:       payload.Intent,
		Answer:       payload.Answer,
		MatchCount:   payload.MatchCount,
		CreatedAt:    time.Now().UTC(),
	}

	if err := as.queryLogRepo.Create(ctx, queryLog); err != nil {
		as.logger.Error("audit-service", "failed to persist query log", map[string]interface{}{
			"error": err.Error(),
			"query": payload.Query,
		})
		msg.Nack()
		return
	}

	as.logger.Info("audit-service", "query log persisted", map[string]interface{}{
		"query_log_id": queryLog.Id.String(),
	})
	msg.Ack()
}
