package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeProvider counts calls and replays canned payloads or failures.
type fakeProvider struct {
	calls    int
	failOn   int // fail on the nth call (1-based); 0 never fails
	err      error
	payloads []*DayPayload
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchDay(ctx context.Context, city string, date time.Time) (*DayPayload, error) {
	f.calls++
	if f.failOn > 0 && f.calls == f.failOn {
		return nil, f.err
	}
	idx := f.calls - 1
	if idx < len(f.payloads) {
		return f.payloads[idx], nil
	}
	return &DayPayload{Weather: []DailyEntry{{Date: date.Format("2006-01-02")}}}, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testToday = time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

func TestRetrieveHorizonExceededMakesNoCall(t *testing.T) {
	fake := &fakeProvider{}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := testToday.AddDate(0, 0, 20)
	_, err := r.Retrieve(context.Background(), "Madrid", &start, nil)
	if !errors.Is(err, ErrHorizonExceeded) {
		t.Fatalf("expected ErrHorizonExceeded, got %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", fake.calls)
	}
}

func TestRetrieveHorizonFailsIdentically(t *testing.T) {
	fake := &fakeProvider{}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := testToday.AddDate(0, 0, 30)
	end := testToday.AddDate(0, 0, 32)
	for i := 0; i < 3; i++ {
		_, err := r.Retrieve(context.Background(), "Madrid", &start, &end)
		if !errors.Is(err, ErrHorizonExceeded) {
			t.Fatalf("call %d: expected ErrHorizonExceeded, got %v", i, err)
		}
	}
	if fake.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", fake.calls)
	}
}

func TestRetrieveEndAtHorizonIsAccepted(t *testing.T) {
	fake := &fakeProvider{}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := testToday.AddDate(0, 0, 13)
	set, err := r.Retrieve(context.Background(), "Madrid", &start, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(set.Days))
	}
}

func TestRetrieveDefaultsToSingleDayToday(t *testing.T) {
	fake := &fakeProvider{
		payloads: []*DayPayload{{
			Weather:          []DailyEntry{{Date: "2026-03-02"}},
			CurrentCondition: []CurrentCondition{{TempC: "21"}},
		}},
	}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	set, err := r.Retrieve(context.Background(), "Madrid", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected 1 call, got %d", fake.calls)
	}
	if len(set.Current) != 1 || set.Current[0].TempC != "21" {
		t.Fatalf("expected day-0 current conditions to be kept, got %+v", set.Current)
	}
}

func TestRetrieveRangeIsInclusiveAndOrdered(t *testing.T) {
	fake := &fakeProvider{}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := testToday.AddDate(0, 0, 1)
	end := testToday.AddDate(0, 0, 3)
	set, err := r.Retrieve(context.Background(), "Madrid", &start, &end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.calls != 3 {
		t.Fatalf("expected 3 calls for a 3-day range, got %d", fake.calls)
	}
	if len(set.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(set.Days))
	}
	for i, want := range []string{"2026-03-03", "2026-03-04", "2026-03-05"} {
		if set.Days[i].Date != want {
			t.Fatalf("day %d: expected %s, got %s", i, want, set.Days[i].Date)
		}
	}
}

func TestRetrieveSameDayRangeFetchesOneDay(t *testing.T) {
	fake := &fakeProvider{}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := time.Date(2026, time.March, 3, 13, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 3, 15, 0, 0, 0, time.UTC)
	set, err := r.Retrieve(context.Background(), "Madrid", &start, &end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.calls != 1 || len(set.Days) != 1 {
		t.Fatalf("expected a single fetched day, got %d calls and %d days", fake.calls, len(set.Days))
	}
}

func TestRetrieveProviderErrorShortCircuits(t *testing.T) {
	provErr := &ProviderError{Message: "api key invalid"}
	fake := &fakeProvider{failOn: 2, err: provErr}
	r := NewRetriever(fake, 13).WithClock(fixedClock(testToday))

	start := testToday
	end := testToday.AddDate(0, 0, 3)
	_, err := r.Retrieve(context.Background(), "Madrid", &start, &end)

	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Message != "api key invalid" {
		t.Fatalf("expected provider error to surface, got %v", err)
	}
	if fake.calls != 2 {
		t.Fatalf("expected remaining days to be abandoned after call 2, got %d calls", fake.calls)
	}
}
