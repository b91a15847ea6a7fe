package http

import (
	"errors"
	"net/http"

	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	mid "github.com/veracourse/portal/internal/hdl/http/middleware"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterNotificationRoutes() {
	h.Router.Route(
		"/api/admin/notifications", func(r chi.Router) {
			r.Use(mid.Auth(h.au))

			r.Get("/", h.listNotifications)
			r.Post("/", h.createNotification)
			r.Delete("/{id}", h.deleteNotification)
		},
	)
}

// listNotifications godoc
//
//	@Summary	List notifications
//	@Tags		Notifications
//	@Produce	json
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Param		size	query		int	false	"Page size"		default(20)
//	@Success	200		{object}	dto.PaginatedNotificationResponse
//	@Failure	500		{object}	utils.ErrorResponse	"internal error"
//	@Router		/api/admin/notifications [get]
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePagination(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListNotifications(r.Context(), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// createNotification godoc
//
//	@Summary		Publish a notification
//	@Description	An empty category targets every student
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateNotificationRequest	true	"Notification payload"
//	@Success		201		{object}	utils.Response{data=dto.CreateIDResponse}
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/api/admin/notifications [post]
func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateNotificationRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.CreateNotification(r.Context(), req)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// deleteNotification godoc
//
//	@Summary	Delete a notification
//	@Tags		Notifications
//	@Produce	json
//	@Param		id	path	string	true	"Notification UUID"
//	@Success	204	"Deleted"
//	@Failure	400	{object}	utils.ErrorResponse
//	@Failure	404	{object}	utils.ErrorResponse	"not found"
//	@Failure	500	{object}	utils.ErrorResponse
//	@Router		/api/admin/notifications/{id} [delete]
func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(w, r)
	if !ok {
		return
	}

	if err := h.ctrl.DeleteNotification(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
