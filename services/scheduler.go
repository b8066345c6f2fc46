// services/scheduler.go
package services

import (
	"log"
	"time"

	"wish-platform-server/models"
	"wish-platform-server/utils"

	"github.com/go-co-op/gocron/v2"
)

// StartEventScheduler deactivates fundraising events once their date has
// passed and tells admins how each one closed out.
func (s *EventService) StartEventScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			var events []models.FundraisingEvent
			now := time.Now()
			err := s.DB.Where("is_active = ? AND event_date <= ?", true, now).
				Find(&events).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, e := range events {
				e.IsActive = false
				if err := s.DB.Save(&e).Error; err != nil {
					log.Printf("[Scheduler] Failed to deactivate event %s: %v", e.ID, err)
					continue
				}
				log.Printf("✅ Auto-closed event: %s", e.Title)
				go utils.SendAdminEmail(
					"Fundraising event ended: "+e.Title,
					"The event \""+e.Title+"\" has ended.\n\nRaised "+
						utils.FormatUSD(e.AmountRaised)+" of "+utils.FormatUSD(e.FundraisingGoal)+".",
				)
			}
		}),
	)
}
