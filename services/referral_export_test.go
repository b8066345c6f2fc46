package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"wish-platform-server/models"
)

func TestReferralsToCSV(t *testing.T) {
	followUp := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	referrals := []models.Referral{
		{
			ID:              "r-1",
			ChildName:       "Ava",
			ChildAge:        10,
			GuardianName:    "Bea",
			GuardianEmail:   "b@x.com",
			GuardianPhone:   "(555) 123-4567",
			WishDescription: "Wants to make a short film, starring her dog",
			UrgencyLevel:    models.UrgencyMedium,
			Status:          models.StatusPending,
			FollowUpDate:    &followUp,
		},
		{
			ID:              "r-2",
			ChildName:       "Milo",
			ChildAge:        14,
			GuardianName:    "Cam",
			GuardianEmail:   "cam@example.org",
			WishDescription: "A stop-motion animation about deep sea creatures",
			UrgencyLevel:    models.UrgencyHigh,
			Status:          models.StatusApproved,
		},
	}

	data, err := referralsToCSV(referrals)
	if err != nil {
		t.Fatalf("referralsToCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 records", len(rows))
	}

	if rows[0][0] != "id" || rows[0][1] != "child_name" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if len(rows[0]) != len(referralCSVHeader) {
		t.Errorf("header has %d columns, want %d", len(rows[0]), len(referralCSVHeader))
	}

	// Embedded comma in the wish survives a parse round trip.
	if rows[1][6] != "Wants to make a short film, starring her dog" {
		t.Errorf("wish column mangled: %q", rows[1][6])
	}
	if rows[1][11] != "2026-09-15" {
		t.Errorf("follow_up_date = %q, want 2026-09-15", rows[1][11])
	}
	if rows[2][11] != "" {
		t.Errorf("missing follow-up should serialize empty, got %q", rows[2][11])
	}
	if rows[2][9] != "approved" {
		t.Errorf("status column = %q, want approved", rows[2][9])
	}
}

func TestReferralsToCSVEmpty(t *testing.T) {
	data, err := referralsToCSV(nil)
	if err != nil {
		t.Fatalf("referralsToCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("empty export should be header only, got %d lines", len(lines))
	}
}
