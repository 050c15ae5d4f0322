package tournaments

// Error message constants
const (
	ErrTournamentNotFound   = "Tournament not found"
	ErrInvalidTournamentID  = "Invalid tournament ID"
	ErrTypeAndDetailsNeeded = "Type and tournament details are required"
	ErrNoFieldsToUpdate     = "No valid fields to update"
	ErrNothingUpdated       = "No tournament found to update or no changes made"
	ErrDatabaseError        = "Database error"
)

// CreateTournamentRequest model for tournament creation, all fields required
type CreateTournamentRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateTournamentRequest model for partial updates: only the supplied subset
// of fields is replaced
type UpdateTournamentRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

// UpdateByTypeRequest patches an element of a document's nested tournaments
// array, matched by its type field
type UpdateByTypeRequest struct {
	Type       string                 `json:"type" binding:"required"`
	Tournament map[string]interface{} `json:"tournament" binding:"required"`
}
