package request

import (
	"errors"
	"testing"
	"time"

	"startlabx/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		err  error
	}{
		{"", time.Time{}, nil},
		{"2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), nil},
		{"2025-01-15T10:30:00-03:00", time.Date(2025, 1, 15, 13, 30, 0, 0, time.UTC), nil},
		{"15/01/2025", time.Time{}, ErrInvalidDate},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if !errors.Is(err, tc.err) {
			t.Fatalf("ParseDate(%q) error = %v, want %v", tc.in, err, tc.err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestCreateOfferRequest_ToInput(t *testing.T) {
	pct := decimal.NewFromInt(5)
	in := CreateOfferRequest{StartupID: "s-1", ProfessionalID: "pro-1", EquityPercentage: &pct, Role: "CTO"}.ToInput()

	if !in.Salary.IsZero() {
		t.Fatalf("expected salary default 0, got %s", in.Salary)
	}
	if in.VestingPeriodMonths != nil || in.CliffPeriodMonths != nil {
		t.Fatalf("expected periods left to use case defaults: %+v", in)
	}
	if !in.EquityPercentage.Equal(pct) {
		t.Fatalf("unexpected equity %s", in.EquityPercentage)
	}
}

func TestAddEntryRequest_ToInput(t *testing.T) {
	pct := decimal.NewFromInt(60)
	r := AddEntryRequest{
		StartupID:        "s-1",
		StakeholderID:    "u-1",
		StakeholderType:  " founder ",
		EquityPercentage: &pct,
		VestingStart:     strPtr("2025-01-01"),
		VestingEnd:       strPtr(""),
	}

	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if in.StakeholderType != entities.StakeholderFounder {
		t.Fatalf("expected FOUNDER, got %q", in.StakeholderType)
	}
	if in.VestingStart == nil || in.VestingEnd != nil {
		t.Fatalf("unexpected window %v %v", in.VestingStart, in.VestingEnd)
	}

	r.VestingEnd = strPtr("not a date")
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestExitRequest_Preference(t *testing.T) {
	if !(ExitRequest{}).Preference().IsZero() {
		t.Fatal("expected zero preference by default")
	}
	p := decimal.NewFromInt(600000)
	if !(ExitRequest{LiquidationPreference: &p}).Preference().Equal(p) {
		t.Fatal("expected explicit preference")
	}
}
