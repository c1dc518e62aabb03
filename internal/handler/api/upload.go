package api

import (
	"bytes"
	"io"
	"net/http"

	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

type UploadHandler struct {
	commands commands.UploadCommands
}

func NewUploadHandler(uploadCommands commands.UploadCommands) *UploadHandler {
	return &UploadHandler{commands: uploadCommands}
}

// @Summary Upload an image
// @Description Uploads a jpeg, png or webp image. With villa_id the image is also attached to that villa.
// @Tags admin-upload
// @Security CookieAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param villa_id formData string false "Villa to attach the image to"
// @Param alt_text formData string false "Alt text for the attached image"
// @Success 201 {object} resdto.UploadResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "File is required", nil)
		return
	}

	cmd := commands.UploadImageCommand{AltText: c.PostForm("alt_text")}
	if raw := c.PostForm("villa_id"); raw != "" {
		villaID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid villa ID", nil)
			return
		}
		cmd.VillaID = &villaID
	}

	file, err := header.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read file", nil)
		return
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read file", nil)
		return
	}
	head = head[:n]

	cmd.File = shared.UploadInput{
		Filename:    header.Filename,
		ContentType: http.DetectContentType(head),
		Size:        header.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	}

	uploaded, err := h.commands.UploadImage(c.Request.Context(), cmd)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUploadedImage(uploaded))
}
