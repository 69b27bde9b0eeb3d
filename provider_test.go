package yieldcurve

import (
	"context"
	"errors"
	"testing"

	"github.com/etnz/yieldcurve/date"
)

func TestLoad(t *testing.T) {
	r := date.Range{From: D("2024-01-01"), To: D("2024-01-31")}
	boom := errors.New("boom")

	testCases := []struct {
		name    string
		p       ProviderFunc
		wantLen int
		wantErr bool
	}{
		{
			name: "success",
			p: func(context.Context, date.Range) (*Series, error) {
				return NewSeries().Append(D("2024-01-02"), full(4)), nil
			},
			wantLen: 1,
		},
		{
			name: "failure degrades to an empty series",
			p: func(context.Context, date.Range) (*Series, error) {
				return NewSeries().Append(D("2024-01-02"), full(4)), boom
			},
			wantErr: true,
		},
		{
			name: "nil series",
			p:    func(context.Context, date.Range) (*Series, error) { return nil, nil },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Load(context.Background(), tc.p, r)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if s == nil {
				t.Fatalf("Load() returned a nil series")
			}
			if s.Len() != tc.wantLen {
				t.Errorf("Load().Len() = %d want %d", s.Len(), tc.wantLen)
			}
			if tc.wantErr && !errors.Is(err, boom) {
				t.Errorf("Load() error = %v, want it to wrap %v", err, boom)
			}
		})
	}
}

func TestDefaultRange(t *testing.T) {
	got := DefaultRange(D("2025-01-01"), DefaultYears)
	want := date.Range{From: D("2020-01-02"), To: D("2024-12-31")}
	if got != want {
		t.Errorf("DefaultRange() = %v want %v", got, want)
	}
}

func TestPickerBounds(t *testing.T) {
	today := D("2024-06-01")
	if got, want := PickerBounds(NewSeries(), today), (date.Range{From: D("2000-01-01"), To: today}); got != want {
		t.Errorf("PickerBounds(empty) = %v want %v", got, want)
	}
	if got, want := PickerBounds(nil, today), (date.Range{From: D("2000-01-01"), To: today}); got != want {
		t.Errorf("PickerBounds(nil) = %v want %v", got, want)
	}
	s := NewSeries().Append(D("2024-01-02"), full(4)).Append(D("2024-05-31"), full(4))
	if got, want := PickerBounds(s, today), (date.Range{From: D("2024-01-02"), To: D("2024-05-31")}); got != want {
		t.Errorf("PickerBounds() = %v want %v", got, want)
	}
}
