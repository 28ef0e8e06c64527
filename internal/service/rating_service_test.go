package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

const playStorePage = `<html><script>{"aggregateRating":{"@type":"AggregateRating","ratingValue":"3.9","ratingCount":"1200"}}</script></html>`

func TestGetLiveRatings(t *testing.T) {
	appStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"resultCount":1,"results":[{"averageUserRating":4.45}]}`))
	}))
	defer appStore.Close()

	playStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(playStorePage))
	}))
	defer playStore.Close()

	svc := NewRatingService(appStore.URL, playStore.URL, nopLogger{})

	got, err := svc.GetLiveRatings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.AppStoreLive.Value != "4.5" {
		t.Errorf("app store value = %q, want 4.5", got.AppStoreLive.Value)
	}
	if got.AppStoreLive.RawValue == nil || *got.AppStoreLive.RawValue != 4.45 {
		t.Errorf("app store raw value = %v", got.AppStoreLive.RawValue)
	}
	if got.PlayStoreLive.Value != "3.9" {
		t.Errorf("play store value = %q, want 3.9", got.PlayStoreLive.Value)
	}
	if got.AppStoreLive.Source != "live" || got.PlayStoreLive.Source != "live" {
		t.Error("source not marked live")
	}
}

func TestGetLiveRatingsIndependentFailures(t *testing.T) {
	appStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer appStore.Close()

	playStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(playStorePage))
	}))
	defer playStore.Close()

	svc := NewRatingService(appStore.URL, playStore.URL, nopLogger{})

	got, err := svc.GetLiveRatings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.AppStoreLive.Value != "N/A" || got.AppStoreLive.RawValue != nil {
		t.Errorf("failed app store lookup not rendered as N/A: %+v", got.AppStoreLive)
	}
	if got.PlayStoreLive.Value != "3.9" {
		t.Errorf("play store value = %q, healthy store should still resolve", got.PlayStoreLive.Value)
	}
}

func TestGetLiveRatingsNoRatingInPage(t *testing.T) {
	appStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"resultCount":0,"results":[]}`))
	}))
	defer appStore.Close()

	playStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>no structured data here</html>`))
	}))
	defer playStore.Close()

	svc := NewRatingService(appStore.URL, playStore.URL, nopLogger{})

	got, err := svc.GetLiveRatings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.AppStoreLive.Value != "N/A" || got.PlayStoreLive.Value != "N/A" {
		t.Errorf("missing ratings not rendered as N/A: %+v", got)
	}
}

func TestGetLiveRatingsUsesCache(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"resultCount":1,"results":[{"averageUserRating":4.0}]}`))
	}))
	defer upstream.Close()

	playStore := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(playStorePage))
	}))
	defer playStore.Close()

	svc := NewRatingService(upstream.URL, playStore.URL, nopLogger{})

	if _, err := svc.GetLiveRatings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	firstRound := atomic.LoadInt32(&hits)

	if _, err := svc.GetLiveRatings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if atomic.LoadInt32(&hits) != firstRound {
		t.Error("second call bypassed the cache")
	}
}
