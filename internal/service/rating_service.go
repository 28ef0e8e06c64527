package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"echoparse-be/internal/dto"
	"echoparse-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const (
	liveRatingsCacheKey = "live_ratings"
	liveRatingsCacheTTL = 5 * time.Minute
	storeRequestTimeout = 10 * time.Second
)

// playRatingPattern pulls the aggregate rating out of the Play Store page
// HTML; there is no public API for it.
var playRatingPattern = regexp.MustCompile(`"aggregateRating":\{"@type":"AggregateRating","ratingValue":"([0-9.]+)"`)

type IRatingService interface {
	GetLiveRatings(ctx context.Context) (*dto.LiveRatingsResponse, error)
}

type ratingService struct {
	client            *http.Client
	cache             *cache.Cache
	appStoreLookupURL string
	playStoreURL      string
	logger            logger.ILogger
}

func NewRatingService(appStoreLookupURL, playStoreURL string, logger logger.ILogger) IRatingService {
	return &ratingService{
		client:            &http.Client{Timeout: storeRequestTimeout},
		cache:             cache.New(liveRatingsCacheTTL, 10*time.Minute),
		appStoreLookupURL: appStoreLookupURL,
		playStoreURL:      playStoreURL,
		logger:            logger,
	}
}

// GetLiveRatings fetches both store ratings. Each lookup fails
// independently; a failed store renders as "N/A" instead of failing the
// whole response.
func (s *ratingService) GetLiveRatings(ctx context.Context) (*dto.LiveRatingsResponse, error) {
	if cached, found := s.cache.Get(liveRatingsCacheKey); found {
		if response, ok := cached.(*dto.LiveRatingsResponse); ok {
			return response, nil
		}
	}

	iosRating := s.fetchAppStoreRating(ctx)
	androidRating := s.fetchPlayStoreRating(ctx)

	response := &dto.LiveRatingsResponse{
		AppStoreLive:  buildLiveRating(iosRating),
		PlayStoreLive: buildLiveRating(androidRating),
	}

	s.cache.Set(liveRatingsCacheKey, response, cache.DefaultExpiration)
	return response, nil
}

func (s *ratingService) fetchAppStoreRating(ctx context.Context) *float64 {
	body, err := s.fetchBody(ctx, s.appStoreLookupURL)
	if err != nil {
		s.logger.Warn("rating-service", "app store lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	var lookup struct {
		Results []struct {
			AverageUserRating *float64 `json:"averageUserRating"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &lookup); err != nil {
		s.logger.Warn("rating-service", "app store lookup returned invalid json", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if len(lookup.Results) == 0 {
		return nil
	}
	return lookup.Results[0].AverageUserRating
}

func (s *ratingService) fetchPlayStoreRating(ctx context.Context) *float64 {
	body, err := s.fetchBody(ctx, s.playStoreURL)
	if err != nil {
		s.logger.Warn("rating-service", "play store lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	match := playRatingPattern.FindSubmatch(body)
	if match == nil {
		return nil
	}
	rating, err := strconv.ParseFloat(string(match[1]), 64)
	if err != nil {
		return nil
	}
	return &rating
}

func (s *ratingService) fetchBody(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

func buildLiveRating(rating *float64) dto.LiveRatingDTO {
	if rating == nil {
		return dto.LiveRatingDTO{Value: "N/A", Source: "live"}
	}
	return dto.LiveRatingDTO{
		Value:    fmt.Sprintf("%.1f", *rating),
		RawValue: rating,
		Source:   "live",
	}
}
