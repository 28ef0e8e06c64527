package implementation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// recordingConnPool captures the context each query runs under so tests can
// assert the deadline that reaches the driver.
type recordingConnPool struct {
	lastDeadline    time.Time
	lastHadDeadline bool
}

var errNoDatabase = errors.New("no database behind this pool")

func (p *recordingConnPool) record(ctx context.Context) {
	p.lastDeadline, p.lastHadDeadline = ctx.Deadline()
}

func (p *recordingConnPool) PrepareContext(ctx context.Context, _ string) (*sql.Stmt, error) {
	p.record(ctx)
	return nil, errNoDatabase
}

func (p *recordingConnPool) ExecContext(ctx context.Context, _ string, _ ...interface{}) (sql.Result, error) {
	p.record(ctx)
	return nil, errNoDatabase
}

func (p *recordingConnPool) QueryContext(ctx context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	p.record(ctx)
	return nil, errNoDatabase
}

func (p *recordingConnPool) QueryRowContext(ctx context.Context, _ string, _ ...interface{}) *sql.Row {
	p.record(ctx)
	return nil
}

func TestSearchSimilarWithScoreBoundsTheQuery(t *testing.T) {
	pool := &recordingConnPool{}
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{ConnPool: pool})
	if err != nil {
		t.Fatalf("open dummy db: %v", err)
	}

	repo := NewReviewRepository(db)

	// Caller context without a deadline, as fiber request contexts are.
	before := time.Now()
	_, err = repo.SearchSimilarWithScore(context.Background(), []float32{0.1, 0.2}, 5)
	if !errors.Is(err, errNoDatabase) {
		t.Fatalf("expected pool error to propagate, got %v", err)
	}

	if !pool.lastHadDeadline {
		t.Fatal("query ran without a deadline")
	}
	remaining := pool.lastDeadline.Sub(before)
	if remaining <= 0 || remaining > searchTimeout {
		t.Errorf("deadline %v from call start, want within (0, %v]", remaining, searchTimeout)
	}
}
