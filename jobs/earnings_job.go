package jobs

import (
	"log"

	"github.com/sheratonhq/sheraton/services"
)

// RunDailyEarnings is the cron entry for the payout processor. It calls the
// same service function the admin trigger route uses, so the claim guard
// applies no matter who invokes the run.
func RunDailyEarnings() {
	log.Println("Running job: ProcessDailyEarnings...")
	summary := services.ProcessDailyEarnings()
	if summary.Failed > 0 {
		log.Printf("Earnings job finished with %d failure(s)", summary.Failed)
	}
}
