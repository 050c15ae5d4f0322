package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a club member signup record. Signup accepts arbitrary
// additional fields and stores the submitted document verbatim, so everything
// beyond the known fields is kept inline.
type User struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Email         string                 `bson:"email" json:"email"`
	Level         string                 `bson:"level" json:"level"`
	ContactNumber string                 `bson:"contactNumber" json:"contactNumber"`
	Name          string                 `bson:"name" json:"name"`
	Extra         map[string]interface{} `bson:",inline" json:"-"`
}
