package db_models

import "time"

type MembershipPlan string

const (
	PlanMonthly   MembershipPlan = "monthly"
	PlanQuarterly MembershipPlan = "quarterly"
	PlanYearly    MembershipPlan = "yearly"
)

type MembershipStatus string

const (
	MembershipPending MembershipStatus = "pending"
	MembershipActive  MembershipStatus = "active"
	MembershipExpired MembershipStatus = "expired"
)

const MembershipCollection = "gymmembership"

// PlanDurationDays returns the validity window granted on payment. Any plan
// value outside monthly/quarterly falls back to a full year rather than
// failing the payment.
func PlanDurationDays(plan MembershipPlan) int {
	switch plan {
	case PlanMonthly:
		return 30
	case PlanQuarterly:
		return 90
	default:
		return 365
	}
}

type GymMembership struct {
	Email     string           `bson:"email"`
	Plan      MembershipPlan   `bson:"plan"`
	Status    MembershipStatus `bson:"status"`
	StartDate *time.Time       `bson:"start_date"`
	EndDate   *time.Time       `bson:"end_date"`
}
