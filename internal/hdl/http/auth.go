package http

import (
	"errors"
	"net/http"

	"github.com/veracourse/portal/internal/auth"
	"github.com/veracourse/portal/internal/auth/captcha"
	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/ctrl"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	mid "github.com/veracourse/portal/internal/hdl/http/middleware"
	"github.com/veracourse/portal/internal/hdl/http/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.With(mid.Device).Post("/api/auth/jwt", h.authenticate)
	h.Router.With(mid.Device).Post("/api/auth/jwt/refresh", h.refresh)
	h.Router.With(mid.Auth(h.au)).Post("/api/auth/logout", h.logout)
}

// authenticate godoc
//
//	@Summary		Authenticate an admin using email & password
//	@Description	Verify reCAPTCHA, then authenticate and set JWT cookies
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			X-Real-IP	header	string						true	"Client real IP address"
//	@Param			User-Agent	header	string						true	"Client User-Agent"
//	@Param			body		body	dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200			"Successfully authenticated (sets cookies)"
//	@Failure		400			{object}	utils.ErrorResponse
//	@Failure		401			{object}	utils.ErrorResponse
//	@Failure		404			{object}	utils.ErrorResponse
//	@Failure		500			{object}	utils.ErrorResponse
//	@Router			/api/auth/jwt [post]
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	req := &dto.EmailAndPasswordRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	valid, err := h.au.VerifyRecaptcha(r.Context(), req.Token, captcha.PassAuth)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if !valid {
		utils.ErrResponse(w, http.StatusUnauthorized, captcha.ErrValidationFailed)
		return
	}

	res, err := h.ctrl.Authenticate(r.Context(), &d, req)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, res.Access, res.Refresh)
	utils.StatusResponse(w, http.StatusOK)
}

// refresh godoc
//
//	@Summary		Refresh admin JWT tokens
//	@Description	Validate refresh token from cookie and issue new tokens
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			X-Real-IP	header	string	true	"Client real IP address"
//	@Param			User-Agent	header	string	true	"Client User-Agent"
//	@Success		200			"Successfully refreshed tokens (sets cookies)"
//	@Failure		400			{object}	utils.ErrorResponse
//	@Failure		401			{object}	utils.ErrorResponse
//	@Failure		404			{object}	utils.ErrorResponse
//	@Failure		500			{object}	utils.ErrorResponse
//	@Router			/api/auth/jwt/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, ErrNoDeviceInfo)
		return
	}

	cookie, err := r.Cookie(config.RefreshCookieName)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.Refresh(
		r.Context(), &d, &dto.RefreshRequest{
			Refresh: cookie.Value,
		},
	)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		} else if errors.Is(err, auth.ErrTokenRevoked) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, res.Access, res.Refresh)
	utils.StatusResponse(w, http.StatusOK)
}

// logout godoc
//
//	@Summary		Logout admin
//	@Description	Revoke refresh tokens, clear JWT cookies
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	"Revoked refresh tokens, cleared cookies"
//	@Failure		404	{object}	utils.ErrorResponse	"session not found"
//	@Failure		500	{object}	utils.ErrorResponse	"internal error"
//	@Router			/api/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(
			hdl.ErrFailedToGetUUID.Error(),
			zap.Any("uid", r.Context().Value(config.UidKey)),
		)
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	err := h.ctrl.Logout(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.ClearAuthCookies(w)
	utils.StatusResponse(w, http.StatusOK)
}
