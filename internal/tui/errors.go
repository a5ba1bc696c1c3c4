// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-skladischer/internal/service"
)

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

// humanizeError turns a state error into the text shown in the error overlay.
// Connectivity failures get one fixed message; everything else is rendered
// as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrTransportFailure) {
		return msgServerUnavailable
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	var rejected *service.RejectedError
	if errors.As(err, &rejected) && rejected.Reason != "" {
		return rejected.Reason
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Требуется вход в систему"
	case errors.Is(err, service.ErrNoStorageSelected):
		return "Склад не выбран"
	case errors.Is(err, service.ErrUnknownStorage):
		return "Склад не найден"
	}

	return err.Error()
}
