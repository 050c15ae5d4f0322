package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"regexp"

	"api/database"
	"api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var puzzleLabelPattern = regexp.MustCompile(`^puzzle[0-9]+$`)

// PuzzleKey builds the label a puzzle is stored under inside file_ids.
// An empty puzzle number defaults to "1".
func PuzzleKey(puzzleNumber string) string {
	if puzzleNumber == "" {
		puzzleNumber = "1"
	}
	return "puzzle" + puzzleNumber
}

// ValidPuzzleLabel reports whether a caller-supplied column name is a real
// puzzle label. Labels are spliced into dotted update paths, so anything else
// is rejected at the boundary.
func ValidPuzzleLabel(label string) bool {
	return puzzleLabelPattern.MatchString(label)
}

// SetKeyFilter is the 6-field lookup an upload uses to decide whether it
// extends an existing image set
func SetKeyFilter(key models.ImageSetKey) bson.M {
	return bson.M{
		"title":     key.Title,
		"level":     key.Level,
		"category":  key.Category,
		"live":      key.Live,
		"live_link": key.LiveLink,
		"date_time": key.DateTime,
	}
}

// PuzzleEntriesUpdate builds the $set document that merges new puzzle entries
// into an existing file_ids mapping: new labels are added, colliding labels
// are overwritten, everything else is left untouched.
func PuzzleEntriesUpdate(entries map[string]models.PuzzleEntry) bson.M {
	set := bson.M{}
	for label, entry := range entries {
		set["file_ids."+label] = entry
	}
	return bson.M{"$set": set}
}

// PuzzleSolutionUpdate builds the dotted-path $set for the solution endpoint.
// Missing optional inputs arrive as empty strings and overwrite prior values;
// callers must resend values they want to keep.
func PuzzleSolutionUpdate(columnName, move, sidLink, solution, liveLink string) bson.M {
	return bson.M{
		"$set": bson.M{
			fmt.Sprintf("file_ids.%s.move", columnName):     move,
			fmt.Sprintf("file_ids.%s.sid_link", columnName): sidLink,
			fmt.Sprintf("file_ids.%s.solution", columnName): solution,
			"live_link": liveLink,
		},
	}
}

// StoreImage writes one uploaded file into GridFS and returns the generated
// id. It is a package variable so handler tests can substitute the blob store.
var StoreImage = storeImage

func storeImage(fileHeader *multipart.FileHeader) (primitive.ObjectID, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer file.Close()

	opts := options.GridFSUpload().SetMetadata(bson.M{
		"contentType": fileHeader.Header.Get("Content-Type"),
	})

	id, err := database.Bucket.UploadFromStream(fileHeader.Filename, file, opts)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

// ReadImage loads a stored file's content and descriptor from GridFS
func ReadImage(id primitive.ObjectID) ([]byte, *gridfs.File, error) {
	stream, err := database.Bucket.OpenDownloadStream(id)
	if err != nil {
		return nil, nil, err
	}
	defer stream.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(stream); err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), stream.GetFile(), nil
}

// ImageContentType extracts the content type stored with a GridFS file,
// falling back to a generic binary type
func ImageContentType(file *gridfs.File) string {
	var metadata struct {
		ContentType string `bson:"contentType"`
	}
	if file.Metadata != nil {
		_ = bson.Unmarshal(file.Metadata, &metadata)
	}
	if metadata.ContentType == "" {
		return "application/octet-stream"
	}
	return metadata.ContentType
}
