package workers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wish-platform-server/models"
	"wish-platform-server/utils"

	"gorm.io/gorm"
)

// FollowUpNotifier scans for referrals whose follow-up date has arrived and
// reminds admins by email. Reminders are deduplicated in memory per day, so
// restarting the service at most repeats one reminder.
type FollowUpNotifier struct {
	DB *gorm.DB

	notifiedDay string
	notified    map[string]bool
}

func NewFollowUpNotifier(db *gorm.DB) *FollowUpNotifier {
	return &FollowUpNotifier{
		DB:       db,
		notified: make(map[string]bool),
	}
}

// DueReferrals returns referrals with a follow-up date on or before today
// that are still open (not completed or declined).
func (n *FollowUpNotifier) DueReferrals(today time.Time) ([]models.Referral, error) {
	endOfDay := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	var referrals []models.Referral
	err := n.DB.
		Where("follow_up_date IS NOT NULL AND follow_up_date <= ?", endOfDay).
		Where("status NOT IN ?", []string{string(models.StatusCompleted), string(models.StatusDeclined)}).
		Order("follow_up_date ASC").
		Find(&referrals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query due referrals: %w", err)
	}
	return referrals, nil
}

func (n *FollowUpNotifier) runOnce(now time.Time) {
	day := now.Format("2006-01-02")
	if day != n.notifiedDay {
		n.notifiedDay = day
		n.notified = make(map[string]bool)
	}

	referrals, err := n.DueReferrals(now)
	if err != nil {
		log.Printf("[FOLLOWUP] %v", err)
		return
	}

	var due []models.Referral
	for _, r := range referrals {
		if !n.notified[r.ID] {
			due = append(due, r)
			n.notified[r.ID] = true
		}
	}
	if len(due) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d referral(s) are due for follow-up:\n\n", len(due))
	for _, r := range due {
		fmt.Fprintf(&b, "- %s (guardian: %s, status: %s, due %s)\n",
			r.ChildName, r.GuardianName, r.Status, r.FollowUpDate.Format("2006-01-02"))
	}

	log.Printf("[FOLLOWUP] Sending reminder for %d referral(s)", len(due))
	utils.SendAdminEmail("Referral follow-ups due", b.String())
}

// PollFollowUps runs the notifier until the context is cancelled.
func PollFollowUps(ctx context.Context, notifier *FollowUpNotifier, pollInterval time.Duration) {
	log.Println("Starting follow-up reminder polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	notifier.runOnce(time.Now())

	for {
		select {
		case <-ctx.Done():
			log.Println("Follow-up polling stopped")
			return
		case now := <-ticker.C:
			notifier.runOnce(now)
		}
	}
}
