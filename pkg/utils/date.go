package utils

import (
	"log"
	"time"
)

// TimeNowKST returns the current time in the Seoul timezone, which the
// briefing schedule and document titles are anchored to.
func TimeNowKST() time.Time {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return time.Now().In(loc)
}
