package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	perr "padala/internal/platform/errors"
	"padala/internal/platform/logger"
	"padala/internal/services/rates/domain"
)

type fakeSource struct {
	mu      sync.Mutex
	fetches int

	fetchErr error
	parseErr error
	cfg      domain.Config

	// when non-nil, Fetch blocks until the channel is closed
	block chan struct{}
}

func (f *fakeSource) Fetch(ctx context.Context) ([][]string, error) {
	f.mu.Lock()
	f.fetches++
	block := f.block
	err := f.fetchErr
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return [][]string{{"timezone", "UTC"}}, nil
}

func (f *fakeSource) Parse(rows [][]string) (*domain.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.parseErr != nil {
		return nil, f.parseErr
	}
	cfg := f.cfg
	return &cfg, nil
}

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func validCfg() domain.Config {
	return domain.Config{
		Timezone:   "UTC",
		CutoffTime: "14:00",
		Couriers: map[string]map[string]int{
			"LBC": {"ncr": 2, "luzon": 3},
			"J&T": {"ncr": 1},
		},
	}
}

func newTestSvc(t *testing.T, src domain.SourcePort, ttl time.Duration) *Svc {
	t.Helper()
	return New(src, *logger.Named("rates-test"), Config{TTL: ttl})
}

func TestGet_FetchesOnceWithinTTL(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Hour)

	first, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	second, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if first != second {
		t.Fatalf("within ttl both calls must observe the same snapshot")
	}
	if n := src.fetchCount(); n != 1 {
		t.Fatalf("fetch count = %d, want 1", n)
	}
}

func TestGet_ForceRefreshRefetches(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Hour)

	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("seed get: %v", err)
	}
	if _, err := svc.Get(context.Background(), true); err != nil {
		t.Fatalf("forced get: %v", err)
	}
	if n := src.fetchCount(); n != 2 {
		t.Fatalf("fetch count = %d, want 2", n)
	}
}

func TestGet_TTLExpiryRefetches(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Nanosecond)

	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("seed get: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("expired get: %v", err)
	}
	if n := src.fetchCount(); n != 2 {
		t.Fatalf("fetch count = %d, want 2", n)
	}
}

func TestGet_SingleFlightColdStart(t *testing.T) {
	src := &fakeSource{cfg: validCfg(), block: make(chan struct{})}
	svc := newTestSvc(t, src, time.Hour)

	type result struct {
		cfg *domain.Config
		err error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			cfg, err := svc.Get(context.Background(), false)
			results <- result{cfg, err}
		}()
	}

	// let both callers reach the cache before the fetch settles
	time.Sleep(20 * time.Millisecond)
	close(src.block)

	a, b := <-results, <-results
	if a.err != nil || b.err != nil {
		t.Fatalf("gets failed: %v / %v", a.err, b.err)
	}
	if a.cfg != b.cfg {
		t.Fatalf("concurrent cold-start callers must observe the same snapshot")
	}
	if n := src.fetchCount(); n != 1 {
		t.Fatalf("fetch count = %d, want exactly one remote fetch", n)
	}
}

func TestGet_InFlightServesPreviousSnapshotWithoutBlocking(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Nanosecond)

	seeded, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("seed get: %v", err)
	}
	time.Sleep(time.Millisecond) // expire the snapshot

	src.mu.Lock()
	src.block = make(chan struct{})
	src.mu.Unlock()
	defer close(src.block)

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = svc.Get(context.Background(), true)
	}()
	<-started
	time.Sleep(20 * time.Millisecond)

	done := make(chan *domain.Config, 1)
	go func() {
		cfg, _ := svc.Get(context.Background(), false)
		done <- cfg
	}()
	select {
	case cfg := <-done:
		if cfg != seeded {
			t.Fatalf("caller during refresh must get the previous snapshot")
		}
	case <-time.After(time.Second):
		t.Fatalf("caller blocked behind an in-flight refresh")
	}
}

func TestGet_StaleFallbackOnFetchFailure(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Nanosecond)

	seeded, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("seed get: %v", err)
	}

	src.mu.Lock()
	src.fetchErr = errors.New("sheet unreachable")
	src.mu.Unlock()
	time.Sleep(time.Millisecond)

	got, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("stale fallback must not error: %v", err)
	}
	if got != seeded {
		t.Fatalf("stale fallback must serve the previous snapshot")
	}
}

func TestGet_FailureWithoutSnapshotPropagates(t *testing.T) {
	src := &fakeSource{cfg: validCfg(), fetchErr: errors.New("sheet unreachable")}
	svc := newTestSvc(t, src, time.Hour)

	_, err := svc.Get(context.Background(), false)
	if err == nil {
		t.Fatalf("want error with no fallback snapshot")
	}
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("want CONFIG_ERROR, got %s", perr.CodeOf(err))
	}
}

func TestGet_ValidationFailureTreatedAsFetchFailure(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Nanosecond)

	seeded, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("seed get: %v", err)
	}

	src.mu.Lock()
	src.cfg.Couriers = nil
	src.mu.Unlock()
	time.Sleep(time.Millisecond)

	got, err := svc.Get(context.Background(), false)
	if err != nil {
		t.Fatalf("stale fallback must not error: %v", err)
	}
	if got != seeded {
		t.Fatalf("invalid refresh must fall back to the previous snapshot")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.Config)
		wantOK bool
	}{
		{"valid", func(c *domain.Config) {}, true},
		{"missing timezone", func(c *domain.Config) { c.Timezone = "" }, false},
		{"bad timezone", func(c *domain.Config) { c.Timezone = "Not/AZone" }, false},
		{"missing cutoff", func(c *domain.Config) { c.CutoffTime = "" }, false},
		{"bad cutoff", func(c *domain.Config) { c.CutoffTime = "25:99" }, false},
		{"empty couriers", func(c *domain.Config) { c.Couriers = map[string]map[string]int{} }, false},
		{"zero day count", func(c *domain.Config) { c.Couriers["LBC"]["ncr"] = 0 }, false},
		{"negative day count", func(c *domain.Config) { c.Couriers["LBC"]["ncr"] = -3 }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validCfg()
			c.mutate(&cfg)
			err := Validate(&cfg)
			if c.wantOK && err != nil {
				t.Fatalf("want valid, got %v", err)
			}
			if !c.wantOK {
				if err == nil {
					t.Fatalf("want validation failure")
				}
				if !perr.IsCode(err, perr.ErrorCodeConfig) {
					t.Fatalf("want CONFIG_ERROR, got %s", perr.CodeOf(err))
				}
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Fatalf("nil config must fail validation")
	}
}

func TestClearCacheForcesRefetch(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Hour)

	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("seed get: %v", err)
	}
	svc.ClearCache()
	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if n := src.fetchCount(); n != 2 {
		t.Fatalf("fetch count = %d, want 2", n)
	}
}

func TestSetTTL(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Hour)

	if err := svc.SetTTL(-time.Second); err == nil {
		t.Fatalf("negative ttl must be rejected")
	}
	if err := svc.SetTTL(time.Minute); err != nil {
		t.Fatalf("ttl update: %v", err)
	}
	if info := svc.Info(); info.TTLSeconds != 60 {
		t.Fatalf("ttl seconds = %v, want 60", info.TTLSeconds)
	}
}

func TestInfo(t *testing.T) {
	src := &fakeSource{cfg: validCfg()}
	svc := newTestSvc(t, src, time.Hour)

	if info := svc.Info(); info.Cached || info.CourierCount != 0 {
		t.Fatalf("empty cache info = %+v", info)
	}

	if _, err := svc.Get(context.Background(), false); err != nil {
		t.Fatalf("seed get: %v", err)
	}
	info := svc.Info()
	if !info.Cached || info.CourierCount != 2 || info.IsStale {
		t.Fatalf("seeded cache info = %+v", info)
	}

	if err := svc.SetTTL(0); err != nil {
		t.Fatalf("ttl update: %v", err)
	}
	if info := svc.Info(); !info.IsStale {
		t.Fatalf("zero ttl must report stale")
	}
}
