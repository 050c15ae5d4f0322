package images

import "api/models"

// Error message constants
const (
	ErrMissingRequiredFields = "Missing required fields in the request"
	ErrMissingParameters     = "Missing required parameters"
	ErrNoFilesUploaded       = "No files uploaded"
	ErrNoUpdateParameters    = "No update parameters provided"
	ErrImageSetNotFound      = "Image set not found"
	ErrNoMatchingDocument    = "No matching document found"
	ErrNoImagesForTitle      = "No images found with the given title and level"
	ErrNoImagesForSolutions  = "No images found with the given title, level, and category"
	ErrNoSetsForLevel        = "No image sets found for this level"
	ErrNoSetForTitle         = "No image set found with the specified title"
	ErrDocumentNotUpdated    = "Document not updated"
	ErrLevelRequired         = "Level parameter is required"
	ErrFileIDRequired        = "File ID is required"
	ErrInvalidFileID         = "Invalid file ID"
	ErrInvalidPuzzleLabel    = "Invalid puzzle label"
	ErrTitleAndLevelRequired = "Title and level are required"
	ErrUploadFailed          = "Failed to upload file"
	ErrReadImageFailed       = "Failed to read image file"
	ErrDatabaseError         = "Database error"
)

// Cache key prefixes for the read-side Redis cache. Every write to the
// image_sets collection invalidates both prefixes.
const (
	cachePrefixPuzzle = "puzzle:"
	cachePrefixSets   = "sets:"
)

// UpdateLiveRequest model for the live-broadcast update endpoint. At least
// one of live and live_link must be supplied.
type UpdateLiveRequest struct {
	Level    string  `json:"level" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Live     *string `json:"live"`
	LiveLink *string `json:"live_link"`
}

// UpdateSolutionRequest model for the puzzle solution endpoint. Optional
// fields default to empty strings and overwrite stored values; callers must
// resend values they want to keep.
type UpdateSolutionRequest struct {
	Level      string `json:"level" binding:"required"`
	Category   string `json:"category" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Live       string `json:"live" binding:"required"`
	ColumnName string `json:"column_name" binding:"required"`
	Move       string `json:"move"`
	SidLink    string `json:"sid_link"`
	Solution   string `json:"solution"`
	LiveLink   string `json:"live_link"`
}

// FileIDRequest model for fetching a stored image by its blob id
type FileIDRequest struct {
	FileID string `json:"file_id" binding:"required"`
}

// DeleteSetRequest model for deleting an image set and its blobs
type DeleteSetRequest struct {
	Title    string `json:"title" binding:"required"`
	Level    string `json:"level" binding:"required"`
	Category string `json:"category"`
}

// PuzzleProjection is the single-puzzle view returned by the getpuzzleid
// endpoint: the set's scalar fields plus exactly one requested entry
type PuzzleProjection struct {
	Level    string                        `json:"level"`
	Category string                        `json:"category"`
	Title    string                        `json:"title"`
	Live     string                        `json:"live"`
	DateTime string                        `json:"date_time"`
	LiveLink string                        `json:"live_link"`
	FileIDs  map[string]models.PuzzleEntry `json:"file_ids"`
}

// ImageSetSummary is the per-set view returned by the level listing, without
// the document id
type ImageSetSummary struct {
	Level    string                        `json:"level"`
	Live     string                        `json:"live"`
	Title    string                        `json:"title"`
	Category string                        `json:"category"`
	LiveLink string                        `json:"live_link"`
	DateTime string                        `json:"date_time"`
	FileIDs  map[string]models.PuzzleEntry `json:"file_ids"`
}

// ImageInfo describes one stored image in a title listing
type ImageInfo struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
