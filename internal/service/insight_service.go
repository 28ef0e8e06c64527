package service

import (
	"context"
	"encoding/json"

	"echoparse-be/internal/dto"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/pkg/insight"
)

type IInsightService interface {
	Query(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error)
}

type insightService struct {
	pipeline         *insight.Pipeline
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewInsightService(
	pipeline *insight.Pipeline,
	publisherService IPublisherService,
	logger logger.ILogger,
) IInsightService {
	return &insightService{
		pipeline:         pipeline,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *insightService) Query(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error) {
	result, err := s.pipeline.Run(ctx, request.Prompt)
	if err != nil {
		return nil, err
	}

	s.publishQueryCompleted(ctx, request.Prompt, result)

	matches := make([]dto.MatchDTO, 0, len(result.Matches))
	for _, match := range result.Matches {
		matches = append(matches, dto.MatchDTO{
			Id:         match.Id,
			ReviewText: match.ReviewText,
			AuthorName: match.AuthorName,
			Rating:     match.Rating,
			ReviewDate: match.ReviewDate,
			AppVersion: match.AppVersion,
			Platform:   match.Platform,
			Similarity: match.Similarity,
		})
	}

	return &dto.QueryResponse{
		Matches: matches,
		Answer:  result.Answer,
	}, nil
}

// publishQueryCompleted is best effort. A broken audit trail must never
// fail the query itself.
func (s *insightService) publishQueryCompleted(ctx context.Context, query string, result *insight.Result) {
	event := dto.QueryCompletedMessage{
		Query:        query,
		CleanedQuery: result.CleanedQuery,
		Intent:       result.Analysis.Intent,
		Answer:       result.Answer,
		MatchCount:   len(result.Matches),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("insight-service", "failed to marshal query completed event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("insight-service", "failed to publish query completed event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
