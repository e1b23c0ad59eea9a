package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raushankrgupta/skincare-storefront/upload"
	"github.com/raushankrgupta/skincare-storefront/utils"
)

// maxUploadBody bounds the whole multipart request; the file limit itself is
// enforced by the upload service so oversized files still get a 400.
const maxUploadBody = 4 * upload.MaxSize

// formFile reads the "file" part of a multipart request.
func formFile(w http.ResponseWriter, r *http.Request) (upload.File, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(upload.MaxSize); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return upload.File{}, nil, upload.ErrTooLarge
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return upload.File{}, nil, upload.ErrNoFile
		}
		return upload.File{}, nil, err
	}

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return upload.File{}, nil, upload.ErrNoFile
	}
	if err != nil {
		return upload.File{}, nil, err
	}

	return upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, func() { file.Close() }, nil
}

// UploadHandler stores a payment proof: multipart fields "file" and "orderId".
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	var logMessageBuilder strings.Builder
	defer utils.FlushLog(&logMessageBuilder)
	utils.AddToLogMessage(&logMessageBuilder, "[Upload API]")

	f, closeFile, err := formFile(w, r)
	if err != nil {
		h.uploadError(w, &logMessageBuilder, err)
		return
	}
	defer closeFile()

	orderID := r.FormValue("orderId")
	ctx, cancel := requestContext(r)
	defer cancel()

	res, err := h.Uploads.Upload(ctx, orderID, f)
	if err != nil {
		h.uploadError(w, &logMessageBuilder, err)
		return
	}

	utils.AddToLogMessage(&logMessageBuilder, fmt.Sprintf("Stored %s for order %s", res.Filename, orderID))
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) uploadError(w http.ResponseWriter, logger *strings.Builder, err error) {
	var v *upload.ValidationError
	if errors.As(err, &v) {
		utils.RespondError(w, logger, v.Message, http.StatusBadRequest)
		return
	}
	utils.AddToLogMessage(logger, fmt.Sprintf("Upload error: %v", err))
	utils.RespondError(w, logger, upload.MsgFailed, http.StatusInternalServerError)
}
