package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/yieldcurve"
	"github.com/etnz/yieldcurve/date"
)

func TestSelectDate(t *testing.T) {
	bounds := date.Range{From: date.MustParse("2024-01-02"), To: date.MustParse("2024-03-28")}
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", "2024-03-28", false},
		{"2024-02-10", "2024-02-10", false},
		{"2024-2-1", "2024-02-01", false},
		{"2024-01-02", "2024-01-02", false},
		{"2024-03-28", "2024-03-28", false},
		{"2024-01-01", "", true},
		{"2024-03-29", "", true},
		{"yesterday", "", true},
	}
	for _, tt := range tests {
		got, err := selectDate(tt.input, bounds)
		if (err != nil) != tt.wantErr {
			t.Errorf("selectDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != date.MustParse(tt.want) {
			t.Errorf("selectDate(%q) = %v want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoadSession(t *testing.T) {
	today := date.MustParse("2024-06-15")
	var asked date.Range
	p := yieldcurve.ProviderFunc(func(ctx context.Context, r date.Range) (*yieldcurve.Series, error) {
		asked = r
		s := yieldcurve.NewSeries()
		s.Observe(date.MustParse("2024-06-14"), 0, yieldcurve.Pct(5.4))
		s.Observe(date.MustParse("2020-06-17"), 0, yieldcurve.Pct(0.1))
		return s, nil
	})

	s := loadSession(context.Background(), p, today)
	if s.loadErr != nil {
		t.Fatalf("loadSession() unexpected error: %v", s.loadErr)
	}
	if want := yieldcurve.DefaultRange(today, *years); asked != want {
		t.Errorf("loadSession() fetched %v want %v", asked, want)
	}
	if want := (date.Range{From: date.MustParse("2020-06-17"), To: date.MustParse("2024-06-14")}); s.bounds() != want {
		t.Errorf("session.bounds() = %v want %v", s.bounds(), want)
	}
}

func TestLoadSession_Failure(t *testing.T) {
	today := date.MustParse("2024-06-15")
	boom := errors.New("boom")
	p := yieldcurve.ProviderFunc(func(ctx context.Context, r date.Range) (*yieldcurve.Series, error) {
		return nil, boom
	})

	s := loadSession(context.Background(), p, today)
	if !errors.Is(s.loadErr, boom) {
		t.Errorf("loadSession() error = %v want %v", s.loadErr, boom)
	}
	if !s.series.IsEmpty() {
		t.Errorf("loadSession() series has %d days want 0", s.series.Len())
	}
	if want := (date.Range{From: date.New(2000, 1, 1), To: today}); s.bounds() != want {
		t.Errorf("session.bounds() = %v want %v", s.bounds(), want)
	}

	// the default date then resolves to no data
	on, err := selectDate("", s.bounds())
	if err != nil {
		t.Fatalf("selectDate() unexpected error: %v", err)
	}
	if r := yieldcurve.Resolve(s.series, on); r.Outcome != yieldcurve.NoData {
		t.Errorf("Resolve() = %v want %v", r.Outcome, yieldcurve.NoData)
	}
}

func TestNewProvider_BadCachePeriod(t *testing.T) {
	oldDir, oldPeriod := *cacheDir, *cachePeriod
	defer func() { *cacheDir, *cachePeriod = oldDir, oldPeriod }()

	*cacheDir, *cachePeriod = t.TempDir(), "fortnightly"
	if _, err := NewProvider(); err == nil {
		t.Errorf("NewProvider() with -cache-period=fortnightly expected an error")
	}

	*cachePeriod = "weekly"
	if _, err := NewProvider(); err != nil {
		t.Errorf("NewProvider() unexpected error: %v", err)
	}
}
