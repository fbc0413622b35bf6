package services

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"natal-chart-service/internal/domain"
)

func named(zone string) domain.ResolvedTimezone {
	return domain.ResolvedTimezone{Name: zone}
}

func TestConvertToUTLondonWinter(t *testing.T) {
	moment := domain.CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12}

	loc, err := ConvertToUT(moment, named("Europe/London"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != 0 {
		t.Errorf("offset = %d, want 0", loc.OffsetMinutes)
	}
	if want := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
	if loc.JulianDay != 2451545.0 {
		t.Errorf("JulianDay = %v, want 2451545", loc.JulianDay)
	}
}

func TestConvertToUTLondonSummer(t *testing.T) {
	moment := domain.CivilMoment{Year: 2000, Month: 6, Day: 21, Hour: 12}

	loc, err := ConvertToUT(moment, named("Europe/London"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != 60 {
		t.Errorf("offset = %d, want 60", loc.OffsetMinutes)
	}
	if want := time.Date(2000, 6, 21, 11, 0, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
}

func TestConvertToUTNewYorkSummer(t *testing.T) {
	moment := domain.CivilMoment{Year: 2023, Month: 6, Day: 21, Hour: 2, Minute: 30}

	loc, err := ConvertToUT(moment, named("America/New_York"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != -240 {
		t.Errorf("offset = %d, want -240", loc.OffsetMinutes)
	}
	if want := time.Date(2023, 6, 21, 6, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
	if want := JulianDay(2023, 6, 21, 6.5); loc.JulianDay != want {
		t.Errorf("JulianDay = %v, want %v", loc.JulianDay, want)
	}
}

func TestConvertToUTAmbiguousFallBack(t *testing.T) {
	// 2022-11-06 01:30 happened twice in New York. The standard-time
	// reading (EST, -300) must win over daylight (EDT, -240).
	moment := domain.CivilMoment{Year: 2022, Month: 11, Day: 6, Hour: 1, Minute: 30}

	loc, err := ConvertToUT(moment, named("America/New_York"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != -300 {
		t.Errorf("offset = %d, want -300 (standard time)", loc.OffsetMinutes)
	}
	if want := time.Date(2022, 11, 6, 6, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
}

func TestConvertToUTSpringForwardGap(t *testing.T) {
	// 2023-03-12 02:30 never happened in New York. The moment shifts to
	// 03:30 and resolves under daylight time.
	moment := domain.CivilMoment{Year: 2023, Month: 3, Day: 12, Hour: 2, Minute: 30}

	loc, err := ConvertToUT(moment, named("America/New_York"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.Local.Hour() != 3 || loc.Local.Minute() != 30 {
		t.Errorf("local = %v, want 03:30", loc.Local)
	}
	if loc.OffsetMinutes != -240 {
		t.Errorf("offset = %d, want -240 (daylight time)", loc.OffsetMinutes)
	}
	if want := time.Date(2023, 3, 12, 7, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
}

func TestConvertToUTFallbackOffset(t *testing.T) {
	moment := domain.CivilMoment{Year: 2023, Month: 6, Day: 21, Hour: 2, Minute: 30}
	tz := domain.ResolvedTimezone{
		Name:          domain.FallbackZoneName,
		OffsetMinutes: -240,
		IsFallback:    true,
	}

	loc, err := ConvertToUT(moment, tz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != -240 {
		t.Errorf("offset = %d, want -240", loc.OffsetMinutes)
	}
	if want := time.Date(2023, 6, 21, 6, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
	if want := JulianDay(2023, 6, 21, 6.5); loc.JulianDay != want {
		t.Errorf("JulianDay = %v, want %v", loc.JulianDay, want)
	}
}

func TestConvertToUTFallbackZeroOffsetCrossesMidnight(t *testing.T) {
	moment := domain.CivilMoment{Year: 2023, Month: 6, Day: 21, Hour: 0, Minute: 30}
	tz := domain.ResolvedTimezone{
		Name:          domain.FallbackZoneName,
		OffsetMinutes: 120,
		IsFallback:    true,
	}

	loc, err := ConvertToUT(moment, tz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 00:30 at +02:00 is 22:30 the previous day in UT.
	if want := time.Date(2023, 6, 20, 22, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
	if want := JulianDay(2023, 6, 20, 22.5); loc.JulianDay != want {
		t.Errorf("JulianDay = %v, want %v", loc.JulianDay, want)
	}
}

func TestConvertToUTUnknownZone(t *testing.T) {
	moment := domain.CivilMoment{Year: 2000, Month: 1, Day: 1, Hour: 12}

	_, err := ConvertToUT(moment, named("Not/AZone"))
	if !errors.Is(err, domain.ErrTimezoneResolution) {
		t.Fatalf("error = %v, want ErrTimezoneResolution", err)
	}
}

func TestConvertToUTHalfHourZone(t *testing.T) {
	// India has no DST and a half-hour offset.
	moment := domain.CivilMoment{Year: 1990, Month: 3, Day: 15, Hour: 6, Minute: 0}

	loc, err := ConvertToUT(moment, named("Asia/Kolkata"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loc.OffsetMinutes != 330 {
		t.Errorf("offset = %d, want 330", loc.OffsetMinutes)
	}
	if want := time.Date(1990, 3, 15, 0, 30, 0, 0, time.UTC); !loc.UTC.Equal(want) {
		t.Errorf("UTC = %v, want %v", loc.UTC, want)
	}
}
