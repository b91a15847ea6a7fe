package http

import (
	"errors"
	"net/http"

	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/hdl"
	mid "github.com/veracourse/portal/internal/hdl/http/middleware"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/veracourse/portal/internal/repo/s3"
	"go.uber.org/zap"
)

func (h *Handler) RegisterFileRoutes() {
	h.Router.With(mid.Auth(h.au)).Post("/api/admin/uploads", h.uploadAttachment)
	h.Router.With(mid.Auth(h.au)).Get("/api/admin/attachment-url", h.adminAttachmentURL)
}

type uploadResponse struct {
	Object string `json:"object"`
}

// uploadAttachment godoc
//
//	@Summary		Upload an attachment
//	@Description	Stores the file and returns the object key videos and notifications reference
//	@Tags			Files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Attachment file"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.ErrorResponse	"bad request or file too large"
//	@Failure		500		{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/admin/uploads [post]
func (h *Handler) uploadAttachment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.MaxMemory); err != nil {
		zap.L().Debug("failed to parse multipart form", zap.Error(err))
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	fileReq := &s3.UploadFileRequest{}
	if err := utils.ParseFileField(r, "file", fileReq); err != nil {
		if errors.Is(err, hdl.ErrInternal) {
			utils.ErrResponse(w, http.StatusInternalServerError, err)
			return
		}

		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if fileReq.Filename == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	object, err := h.ctrl.UploadAttachment(r.Context(), fileReq)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, &uploadResponse{Object: object})
}

// adminAttachmentURL godoc
//
//	@Summary	Get a time-limited download URL for an object key
//	@Tags		Files
//	@Produce	json
//	@Param		object	query		string	true	"Object key"
//	@Success	200		{object}	utils.Response
//	@Failure	400		{object}	utils.ErrorResponse
//	@Failure	500		{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/admin/attachment-url [get]
func (h *Handler) adminAttachmentURL(w http.ResponseWriter, r *http.Request) {
	object := r.URL.Query().Get("object")
	if object == "" {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.AttachmentURL(r.Context(), object)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
