// Package scheduler computes the rotating 14-day hosting schedule.
// The assignment is a pure function of wall-clock time and the roster,
// so every client viewing the same period sees the same hosts.
package scheduler

import (
	"fmt"
	"time"

	"github.com/beetsolutions/veteran-app/apperr"
	"github.com/beetsolutions/veteran-app/models"
)

const (
	periodDays = 14
	hostCount  = 3

	// ContributionAmount is the fixed amount each period collects.
	ContributionAmount = 30.0
)

// Epoch is the fixed reference instant period numbers count from.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrNoEligibleMembers is returned when the pool is empty. Guarding
// here keeps the index arithmetic from dividing by zero.
var ErrNoEligibleMembers = apperr.InvalidState("No eligible members for hosting schedule")

// ComputeSchedule maps now to the current (or, with wantNext, the
// upcoming) 14-day hosting period over the given pool. The pool must
// already be filtered to active members, in stable roster order; hosts
// are picked by index rotation, so when the pool has fewer than three
// members the same member can appear more than once. That duplication
// matches the rotation contract and is deliberately not deduplicated.
func ComputeSchedule(now time.Time, wantNext bool, pool []models.Member) (*models.HostingPeriod, error) {
	if len(pool) == 0 {
		return nil, ErrNoEligibleMembers
	}

	daysSinceEpoch := int(now.Sub(Epoch) / (24 * time.Hour))
	periodNumber := daysSinceEpoch / periodDays
	if wantNext {
		periodNumber++
	}

	startDate := Epoch.AddDate(0, 0, periodNumber*periodDays)
	endDate := startDate.AddDate(0, 0, periodDays)

	n := len(pool)
	hosts := make([]models.Member, 0, hostCount)
	for k := 0; k < hostCount; k++ {
		hosts = append(hosts, pool[(periodNumber*hostCount+k)%n])
	}

	return &models.HostingPeriod{
		ID:                 fmt.Sprintf("schedule_%d", periodNumber),
		StartDate:          startDate,
		EndDate:            endDate,
		Hosts:              hosts,
		AllMembers:         pool,
		ContributionAmount: ContributionAmount,
	}, nil
}
