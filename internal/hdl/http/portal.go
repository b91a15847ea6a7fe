package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/veracourse/portal/internal/revocation"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	studentIDHeader    = "X-Student-Id"
	sessionTokenHeader = "X-Session-Token"
	deviceIDHeader     = "X-Device-Id"
)

func (h *Handler) RegisterPortalRoutes() {
	h.Router.Post("/api/portal/login", h.login)
	h.Router.Post("/api/portal/session/validate", h.validateSession)
	h.Router.With(h.session).Get("/api/portal/sections", h.studentSections)
	h.Router.With(h.session).Get("/api/portal/notifications", h.studentNotifications)
	h.Router.With(h.session).Get("/api/portal/attachment-url", h.attachmentURL)
	h.Router.With(h.session).Get("/api/portal/session/events", h.sessionEvents)
}

// policyStatus maps a login/session policy failure to its HTTP status.
// The error string itself is the machine-readable reason the client
// switches on.
func policyStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, ctrl.ErrInvalidCode),
		errors.Is(err, ctrl.ErrSessionMismatch),
		errors.Is(err, ctrl.ErrSessionExpired),
		errors.Is(err, ctrl.ErrReauthRequired):
		return http.StatusUnauthorized, true
	case errors.Is(err, ctrl.ErrAccountDisabled),
		errors.Is(err, ctrl.ErrAccountExpired),
		errors.Is(err, ctrl.ErrDeviceMismatch):
		return http.StatusForbidden, true
	case errors.Is(err, ctrl.ErrAccountNotFound):
		return http.StatusNotFound, true
	}
	return 0, false
}

// session guards student endpoints: it re-validates the presented
// session against the current record before every request and stores
// the fresh student data on the context.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			studentID, err := uuid.Parse(r.Header.Get(studentIDHeader))
			if err != nil {
				utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrFailedToParseUUID)
				return
			}

			req := &dto.SessionRequest{
				StudentID:    studentID,
				SessionToken: r.Header.Get(sessionTokenHeader),
				DeviceID:     r.Header.Get(deviceIDHeader),
			}
			if req.SessionToken == "" || req.DeviceID == "" {
				utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrDecodeRequest)
				return
			}

			student, err := h.ctrl.ValidateActiveSession(r.Context(), req)
			if err != nil {
				if status, ok := policyStatus(err); ok {
					utils.ErrResponse(w, status, err)
					return
				}

				utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
				return
			}

			ctx := context.WithValue(r.Context(), config.StudentKey, student)
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

func studentFromContext(ctx context.Context) (*dto.StudentDataResponse, bool) {
	s, ok := ctx.Value(config.StudentKey).(*dto.StudentDataResponse)
	return s, ok
}

// login godoc
//
//	@Summary		Validate an access code and bind the device
//	@Description	First successful login binds the submitted device fingerprint; later logins must present the same fingerprint
//	@Tags			Portal
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.LoginRequest	true	"Access code and device snapshot"
//	@Success		200		{object}	utils.Response{data=dto.StudentDataResponse}
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse	"invalid_code"
//	@Failure		403		{object}	utils.ErrorResponse	"account_disabled, account_expired or device_mismatch"
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/api/portal/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req := &dto.LoginRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if req.Device.IP == "" {
		req.Device.IP = r.RemoteAddr
	}
	if req.Device.UA == "" {
		req.Device.UA = r.UserAgent()
	}

	res, err := h.ctrl.ValidateAccessCode(r.Context(), req.Code, &req.Device)
	if err != nil {
		if status, ok := policyStatus(err); ok {
			utils.ErrResponse(w, status, err)
			return
		}

		zap.L().Error("login failed", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// validateSession godoc
//
//	@Summary		Re-validate an issued session
//	@Description	Read-only check of the stored record against the presented token and device; intended for periodic client polling
//	@Tags			Portal
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.SessionRequest	true	"Session credentials"
//	@Success		200		{object}	utils.Response{data=dto.StudentDataResponse}
//	@Failure		401		{object}	utils.ErrorResponse	"session_mismatch, session_expired or reauth_required"
//	@Failure		403		{object}	utils.ErrorResponse	"account_disabled, account_expired or device_mismatch"
//	@Failure		404		{object}	utils.ErrorResponse	"account_not_found"
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/api/portal/session/validate [post]
func (h *Handler) validateSession(w http.ResponseWriter, r *http.Request) {
	req := &dto.SessionRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.ValidateActiveSession(r.Context(), req)
	if err != nil {
		if status, ok := policyStatus(err); ok {
			utils.ErrResponse(w, status, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// studentSections godoc
//
//	@Summary	List the sections the student's access code allows
//	@Tags		Portal
//	@Produce	json
//	@Param		X-Student-Id	header		string	true	"Student id"
//	@Param		X-Session-Token	header		string	true	"Session token"
//	@Param		X-Device-Id		header		string	true	"Device fingerprint"
//	@Success	200				{object}	utils.Response
//	@Failure	401				{object}	utils.ErrorResponse
//	@Failure	500				{object}	utils.ErrorResponse
//	@Router		/api/portal/sections [get]
func (h *Handler) studentSections(w http.ResponseWriter, r *http.Request) {
	student, ok := studentFromContext(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.ListStudentSections(r.Context(), student.AllowedSections)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// studentNotifications godoc
//
//	@Summary	List notifications for the student's category
//	@Tags		Portal
//	@Produce	json
//	@Param		X-Student-Id	header		string	true	"Student id"
//	@Param		X-Session-Token	header		string	true	"Session token"
//	@Param		X-Device-Id		header		string	true	"Device fingerprint"
//	@Success	200				{object}	utils.Response
//	@Failure	401				{object}	utils.ErrorResponse
//	@Failure	500				{object}	utils.ErrorResponse
//	@Router		/api/portal/notifications [get]
func (h *Handler) studentNotifications(w http.ResponseWriter, r *http.Request) {
	student, ok := studentFromContext(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.ListStudentNotifications(r.Context(), student.Category)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// sessionEvents godoc
//
//	@Summary		Stream revocation signals for the current session
//	@Description	Server-sent events; emits one event when the session is superseded by another login or reset by an admin, then closes. Lower latency than the validate poll, not a replacement for it.
//	@Tags			Portal
//	@Produce		text/event-stream
//	@Param			X-Student-Id	header	string	true	"Student id"
//	@Param			X-Session-Token	header	string	true	"Session token"
//	@Param			X-Device-Id		header	string	true	"Device fingerprint"
//	@Success		200
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/api/portal/session/events [get]
func (h *Handler) sessionEvents(w http.ResponseWriter, r *http.Request) {
	student, ok := studentFromContext(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	// Buffered so the bus handler never blocks the publisher; one
	// signal ends the stream anyway.
	sigs := make(chan revocation.Signal, 1)
	unsub, err := h.ctrl.SubscribeRevocation(
		r.Context(), student.ID, func(sig revocation.Signal) {
			select {
			case sigs <- sig:
			default:
			}
		},
	)
	if err != nil {
		zap.L().Error("failed to subscribe to revocation signals", zap.Error(err))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}
	defer unsub()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	select {
	case <-r.Context().Done():
	case sig := <-sigs:
		payload, err := json.Marshal(sig)
		if err != nil {
			return
		}

		fmt.Fprintf(w, "event: revocation\ndata: %s\n\n", payload)
		flusher.Flush()
	}
}

// attachmentURL godoc
//
//	@Summary	Get a time-limited download URL for a video or notification attachment
//	@Tags		Portal
//	@Produce	json
//	@Param		object			query		string	true	"Object key"
//	@Param		X-Student-Id	header		string	true	"Student id"
//	@Param		X-Session-Token	header		string	true	"Session token"
//	@Param		X-Device-Id		header		string	true	"Device fingerprint"
//	@Success	200				{object}	utils.Response
//	@Failure	400				{object}	utils.ErrorResponse
//	@Failure	401				{object}	utils.ErrorResponse
//	@Failure	500				{object}	utils.ErrorResponse
//	@Router		/api/portal/attachment-url [get]
func (h *Handler) attachmentURL(w http.ResponseWriter, r *http.Request) {
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
