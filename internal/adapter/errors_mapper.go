package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	statusErr := &StatusError{StatusCode: resp.StatusCode(), Body: errorDetail(resp.Body())}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr.Err = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr.Err = ErrUnauthorized
	case http.StatusForbidden:
		statusErr.Err = ErrForbidden
	case http.StatusNotFound:
		statusErr.Err = ErrNotFound
	case http.StatusConflict:
		statusErr.Err = ErrConflict
	case http.StatusUnprocessableEntity:
		statusErr.Err = ErrUnprocessable
	case http.StatusBadGateway:
		statusErr.Err = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr.Err = ErrInternalServerError
	default:
		statusErr.Err = ErrUnexpectedStatus
		if statusErr.Body == "" {
			statusErr.Body = http.StatusText(resp.StatusCode())
		}
	}

	return statusErr
}

func invalidResponse(resp *resty.Response, detail string) error {
	return &StatusError{StatusCode: resp.StatusCode(), Body: detail, Err: ErrInvalidResponse}
}

// errorDetail extracts {"detail": "..."} from an error body. Validation
// errors carry a list there, which is returned as raw JSON.
func errorDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return trimmed
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		return detail
	}

	return string(payload.Detail)
}
