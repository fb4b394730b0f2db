package models

import "time"

// Review is a buyer's rating (1-5) of a purchased document.
type Review struct {
	ID         string    `json:"id" bson:"id"`
	DocumentID string    `json:"documentId" bson:"documentId"`
	UserID     string    `json:"userId" bson:"userId"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment" bson:"comment"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
