package utils

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/veracourse/portal/internal/config"
	"github.com/veracourse/portal/internal/dto"
	"github.com/veracourse/portal/internal/hdl"
	"github.com/veracourse/portal/internal/repo/s3"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessPaginatedResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

// ParseDeviceByRequest returns the device attributes the Device
// middleware stored on the context.
func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	ip, ipOK := ctx.Value(config.IpKey).(string)
	ua, uaOK := ctx.Value(config.UaKey).(string)
	return dto.DeviceRequest{IP: ip, UA: ua}, ipOK && uaOK
}

func SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			MaxAge:   int(config.AccessTokenDuration.Seconds()),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			MaxAge:   int(config.RefreshTokenDuration.Seconds()),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{config.AccessCookieName, config.RefreshCookieName} {
		http.SetCookie(
			w, &http.Cookie{
				Name:     name,
				Value:    "",
				MaxAge:   -1,
				HttpOnly: true,
				Secure:   true,
				Path:     "/",
				SameSite: http.SameSiteStrictMode,
			},
		)
	}
}

// ParseFileField reads an optional multipart file field into dst. A
// missing field is not an error; the caller checks dst.Filename.
func ParseFileField(r *http.Request, field string, dst *s3.UploadFileRequest) error {
	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil
		}
		return hdl.ErrDecodeRequest
	}
	defer file.Close()

	if header.Size > config.MaxMemory {
		return hdl.ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return hdl.ErrInternal
	}

	dst.Filename = header.Filename
	dst.ContentType = header.Header.Get("Content-Type")
	dst.File = data

	return nil
}

// ParseFiltersByURL collects the known list filters from the query
// string. Boolean params parse with strconv so "1"/"true" both work;
// anything else stays a string.
func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for k, v := range r.URL.Query() {
		if k == "page" || k == "size" || len(v) == 0 || v[0] == "" {
			continue
		}

		switch k {
		case "is_active", "bound":
			if b, err := strconv.ParseBool(v[0]); err == nil {
				filters[k] = b
			}
		default:
			filters[k] = v[0]
		}
	}
	return filters
}

// ParsePagination reads page/size query params, falling back to the
// defaults on absence or garbage.
func ParsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = config.DefaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 1 || size > 100 {
		size = config.DefaultSize
	}

	return page, size
}
