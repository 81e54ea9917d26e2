package httpx

import (
	"net/http"
	"strconv"

	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseLimitOffset parses common pagination params and clamps to sane bounds.
// - defLimit: default limit when not specified
// - maxLimit: maximum allowed limit (values > maxLimit are clamped to maxLimit).
func ParseLimitOffset(r *http.Request, defLimit, maxLimit int) (int, int) {
	if maxLimit < 1 {
		maxLimit = 1
	}

	lim := parseIntQuery(r, "limit", defLimit)
	off := parseIntQuery(r, "offset", 0)
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	if off < 0 {
		off = 0
	}
	return lim, off
}

// statusForError maps an application error code to an HTTP status and wire
// error code. The empty wire code signals that the caller's fallback applies.
func statusForError(err error) (int, string) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound, "not_found"
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest, "validation_failed"
	case apperrors.ErrCodeConflict:
		return http.StatusConflict, "conflict"
	case apperrors.ErrCodeForeignKey:
		return http.StatusConflict, "foreign_key_violation"
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, "timeout"
	case apperrors.ErrCodeCanceled:
		return http.StatusServiceUnavailable, "request_canceled"
	default:
		return http.StatusInternalServerError, ""
	}
}

// WriteServiceError translates a service error into an HTTP error response.
// Unclassified errors become 500s with the given fallback code so callers
// never leak a bare "internal" to the wire.
func WriteServiceError(w http.ResponseWriter, err error, fallback string) {
	code, errCode := statusForError(err)
	if errCode == "" {
		errCode = fallback
	}
	WriteError(w, ErrorParams{Code: code, ErrCode: errCode, Err: err})
}
