package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tournament represents a tournament listing managed by the club admins
type Tournament struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Date        string             `bson:"date" json:"date"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
}
