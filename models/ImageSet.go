package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PuzzleEntry is one puzzle inside an image set: the GridFS file reference
// plus the move/solution metadata filled in later by the solution endpoint.
type PuzzleEntry struct {
	ID       string `bson:"id" json:"id"`
	Move     string `bson:"move" json:"move"`
	Solution string `bson:"solution" json:"solution"`
	SidLink  string `bson:"sid_link" json:"sid_link"`
}

// DefaultMove is the placeholder stored with a freshly uploaded puzzle
const DefaultMove = "Black to Move"

// ImageSet groups the puzzle images uploaded for one arena. FileIDs is a
// mapping keyed by puzzle label ("puzzle1", "puzzle2", ...), not an array:
// re-uploading an existing label overwrites only that entry.
type ImageSet struct {
	ID       primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Level    string                 `bson:"level" json:"level"`
	Title    string                 `bson:"title" json:"title"`
	Category string                 `bson:"category" json:"category"`
	Live     string                 `bson:"live" json:"live"`
	LiveLink string                 `bson:"live_link" json:"live_link"`
	DateTime string                 `bson:"date_time" json:"date_time"`
	FileIDs  map[string]PuzzleEntry `bson:"file_ids" json:"file_ids"`
}

// ImageSetKey is the composite identity of an image set for upload purposes.
// An upload only extends an existing set when all six fields match exactly.
type ImageSetKey struct {
	Title    string
	Level    string
	Category string
	Live     string
	LiveLink string
	DateTime string
}
