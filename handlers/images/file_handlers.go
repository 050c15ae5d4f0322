package images

import (
	"log"
	"net/http"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serveImage streams a stored blob with its original content type and filename
func serveImage(c *gin.Context, rawID string) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidFileID)
		return
	}

	data, file, err := services.ReadImage(id)
	if err != nil {
		log.Println("Error while reading image from GridFS: ", err)
		response.Error(c, http.StatusInternalServerError, ErrReadImageFailed)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, services.ImageContentType(file), data)
}

// GetImageByFileID streams a stored image selected by request body
// @Summary Get an image by file id
// @Description Streams the binary content of the stored file with its original content type
// @Tags Images
// @Accept json
// @Produce octet-stream
// @Param request body FileIDRequest true "File id"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /image_get_fileid [post]
func GetImageByFileID(c *gin.Context) {
	var req FileIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrFileIDRequired)
		return
	}
	serveImage(c, req.FileID)
}

// GetImage streams a stored image selected by path parameter. This is the
// endpoint behind the URLs returned by the title listing.
// @Summary Get an image by id
// @Description Streams the binary content of the stored file with its original content type
// @Tags Images
// @Produce octet-stream
// @Param id path string true "File id"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /image/{id} [get]
func GetImage(c *gin.Context) {
	serveImage(c, c.Param("id"))
}
