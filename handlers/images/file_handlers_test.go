package images

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetImageRejectsMalformedID(t *testing.T) {
	w := performRequest(setupRouter(), http.MethodGet, "/image/not-a-hex-id", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidFileID)
}

func TestGetImageByFileIDRequiresID(t *testing.T) {
	w := performRequest(setupRouter(), http.MethodPost, "/image_get_fileid", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrFileIDRequired)
}

func TestGetImageByFileIDRejectsMalformedID(t *testing.T) {
	w := performRequest(setupRouter(), http.MethodPost, "/image_get_fileid", `{"file_id":"zzz"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrInvalidFileID)
}
