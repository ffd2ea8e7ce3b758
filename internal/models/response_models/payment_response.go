package response_models

import "go.mongodb.org/mongo-driver/bson"

type PaymentResponse struct {
	PaymentID  string `json:"payment_id"`
	Status     string `json:"status"`
	Membership bson.M `json:"membership"`
}
