package db_models

type PaymentPurpose string

const (
	PurposeGymMembership PaymentPurpose = "gym_membership"
	PurposeBooking       PaymentPurpose = "booking"
	PurposeOther         PaymentPurpose = "other"
)

type PaymentMethod string

const (
	MethodUPI        PaymentMethod = "upi"
	MethodCard       PaymentMethod = "card"
	MethodNetbanking PaymentMethod = "netbanking"
	MethodCash       PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
	PaymentPending PaymentStatus = "pending"
)

const PaymentCollection = "payment"

// Payment records are write-once. There is no gateway round-trip in this
// system: every payment is stored as immediately successful.
type Payment struct {
	Email     string         `bson:"email"`
	Amount    float64        `bson:"amount"`
	Purpose   PaymentPurpose `bson:"purpose"`
	Method    PaymentMethod  `bson:"method"`
	Status    PaymentStatus  `bson:"status"`
	Reference string         `bson:"reference"`
}
