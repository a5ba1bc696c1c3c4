// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-skladischer/internal/config"
	"github.com/MKhiriev/go-skladischer/internal/logger"
	"github.com/MKhiriev/go-skladischer/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an adapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL(" https://inventory.example/api/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://inventory.example/api", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "http://"}, logger.Nop())
	assert.Error(t, err)
}

// ── credentials ──────────────────────────────────────────────────────────────

func TestLogin_SendsPasswordGrantForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/credentials/login", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "alice", r.PostForm.Get("username"))
		assert.Equal(t, "pw", r.PostForm.Get("password"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, map[string]string{"access_token": "T1", "token_type": "bearer"})
	}))
	defer srv.Close()

	resp, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Incorrect username or password", statusErr.Body)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"token_type": "bearer"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/credentials/create-credentials", r.URL.Path)
		writeJSON(w, http.StatusConflict, map[string]string{"detail": "User already exists"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrConflict)
}

// ── users and storages ───────────────────────────────────────────────────────

func TestGetUser_AttachesTokenAndDecodes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{username}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice", chi.URLParam(r, "username"))
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.User{
			Username: "alice",
			Storages: []models.Storage{{Name: "Garage"}},
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "T1", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.Len(t, user.Storages, 1)
	assert.Equal(t, "Garage", user.Storages[0].Name)
}

func TestGetUser_NoTokenNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.User{Username: "alice"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "", "alice")
	require.NoError(t, err)
}

func TestGetUser_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), "T1", "alice")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetStorage_EscapesPathSegments(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/users/{username}/{storage}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/Tool%20Shed", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, models.Storage{Name: "Tool Shed", Content: []models.Item{{CodeID: "i1", Amount: 1}}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	s, err := newTestAdapter(t, srv.URL).GetStorage(context.Background(), "T1", "alice", "Tool Shed")
	require.NoError(t, err)
	assert.Equal(t, "Tool Shed", s.Name)
	require.Len(t, s.Content, 1)
}

func TestGetStorage_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Storage not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetStorage(context.Background(), "T1", "alice", "Attic")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateStorage_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/alice/create-storage", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		var req models.StorageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Attic", req.Name)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).CreateStorage(context.Background(), "T1", "alice", models.StorageRequest{Name: "Attic"})
	require.NoError(t, err)
}

func TestDeleteStorage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/alice/Garage", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteStorage(context.Background(), "T1", "alice", "Garage"))
}

// ── items ────────────────────────────────────────────────────────────────────

func TestCreateItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/alice/Garage/create-item", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Drill","amount":2}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).CreateItem(context.Background(), "T1", "alice", "Garage", models.ItemRequest{Name: "Drill", Amount: 2})
	require.NoError(t, err)
}

func TestCreateItem_ZeroAmountRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Amount must be greater than zero"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).CreateItem(context.Background(), "T1", "alice", "Garage", models.ItemRequest{Name: "Drill"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/alice/Garage/i1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteItem(context.Background(), "T1", "alice", "Garage", "i1"))
}

func TestUpdateItem_OnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/users/alice/Garage/i1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"amount":5}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	amount := 5
	err := newTestAdapter(t, srv.URL).UpdateItem(context.Background(), "T1", "alice", "Garage", "i1", models.ItemUpdateRequest{Amount: &amount})
	require.NoError(t, err)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusUnprocessableEntity: ErrUnprocessable,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusTeapot:              ErrUnexpectedStatus,
	}

	for status, want := range cases {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Ping(context.Background())
			assert.ErrorIs(t, err, want)
			assert.False(t, errors.Is(err, ErrTransport))
		})
	}
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "", errorDetail(nil))
	assert.Equal(t, "plain text", errorDetail([]byte(" plain text ")))
	assert.Equal(t, "Storage not found", errorDetail([]byte(`{"detail":"Storage not found"}`)))
	assert.Equal(t, `[{"msg":"field required"}]`, errorDetail([]byte(`{"detail":[{"msg":"field required"}]}`)))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).GetUser(context.Background(), "T1", "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newTestAdapter(t, srv.URL).Ping(ctx)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
