package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/config"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/internal/utils"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRegister      = "/credentials/create-credentials"
	pathLogin         = "/credentials/login"
	pathUser          = "/users/{username}"
	pathCreateStorage = "/users/{username}/create-storage"
	pathStorage       = "/users/{username}/{storage}"
	pathCreateItem    = "/users/{username}/{storage}/create-item"
	pathItem          = "/users/{username}/{storage}/{code}"
	pathLiveness      = "/liveness"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises adapterCfg.HTTPAddress into a base URL and
// applies the request timeout.
//
// Returns an error if the address is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(creds.FormData()).
		Post(pathRegister)
	if err != nil {
		return transportError("register", err)
	}
	h.logResponse("register", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(creds.FormData()).
		Post(pathLogin)
	if err != nil {
		return models.LoginResponse{}, transportError("login", err)
	}
	h.logResponse("login", resp)

	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return models.LoginResponse{}, invalidResponse(resp, "decode login response: "+err.Error())
	}
	if strings.TrimSpace(loginResp.AccessToken) == "" {
		return models.LoginResponse{}, invalidResponse(resp, "login response has no access token")
	}

	return loginResp, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, token, username string) (models.User, error) {
	resp, err := h.request(ctx, token).
		SetPathParam("username", username).
		Get(pathUser)
	if err != nil {
		return models.User{}, transportError("get user", err)
	}
	h.logResponse("get user", resp)

	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, invalidResponse(resp, "decode user: "+err.Error())
	}

	return user, nil
}

func (h *httpServerAdapter) GetStorage(ctx context.Context, token, username, storage string) (models.Storage, error) {
	resp, err := h.request(ctx, token).
		SetPathParams(map[string]string{"username": username, "storage": storage}).
		Get(pathStorage)
	if err != nil {
		return models.Storage{}, transportError("get storage", err)
	}
	h.logResponse("get storage", resp)

	if err = mapHTTPError(resp); err != nil {
		return models.Storage{}, err
	}

	var s models.Storage
	if err = json.Unmarshal(resp.Body(), &s); err != nil {
		return models.Storage{}, invalidResponse(resp, "decode storage: "+err.Error())
	}

	return s, nil
}

func (h *httpServerAdapter) CreateStorage(ctx context.Context, token, username string, req models.StorageRequest) error {
	resp, err := h.request(ctx, token).
		SetPathParam("username", username).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathCreateStorage)
	if err != nil {
		return transportError("create storage", err)
	}
	h.logResponse("create storage", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteStorage(ctx context.Context, token, username, storage string) error {
	resp, err := h.request(ctx, token).
		SetPathParams(map[string]string{"username": username, "storage": storage}).
		Delete(pathStorage)
	if err != nil {
		return transportError("delete storage", err)
	}
	h.logResponse("delete storage", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, token, username, storage string, req models.ItemRequest) error {
	resp, err := h.request(ctx, token).
		SetPathParams(map[string]string{"username": username, "storage": storage}).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(pathCreateItem)
	if err != nil {
		return transportError("create item", err)
	}
	h.logResponse("create item", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, token, username, storage, codeID string) error {
	resp, err := h.request(ctx, token).
		SetPathParams(map[string]string{"username": username, "storage": storage, "code": codeID}).
		Delete(pathItem)
	if err != nil {
		return transportError("delete item", err)
	}
	h.logResponse("delete item", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, token, username, storage, codeID string, req models.ItemUpdateRequest) error {
	resp, err := h.request(ctx, token).
		SetPathParams(map[string]string{"username": username, "storage": storage, "code": codeID}).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put(pathItem)
	if err != nil {
		return transportError("update item", err)
	}
	h.logResponse("update item", resp)

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(pathLiveness)
	if err != nil {
		return transportError("ping", err)
	}
	h.logResponse("ping", resp)

	return mapHTTPError(resp)
}

// request builds a request carrying token as a bearer credential when set.
func (h *httpServerAdapter) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func (h *httpServerAdapter) logResponse(op string, resp *resty.Response) {
	event := h.logger.Debug()
	if resp.StatusCode() >= http.StatusBadRequest {
		event = h.logger.Warn()
	}

	event.
		Str("op", op).
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("inventory request finished")
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
