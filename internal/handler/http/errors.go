// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-kita-inventory/internal/auth"
	"github.com/MKhiriev/go-kita-inventory/internal/router"
	"github.com/MKhiriev/go-kita-inventory/internal/service"
	"github.com/MKhiriev/go-kita-inventory/internal/session"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/internal/validators"
)

// ErrUnknownView is returned by render when a template name is not
// registered.
var ErrUnknownView = errors.New("unknown view")

// ErrBaseURLRequired is returned by NewHandler when no public base URL is
// configured. Links in mails are never built from request headers.
var ErrBaseURLRequired = errors.New("public base url is not configured")

var errorStatusMap = map[error]int{
	router.ErrNotFound:             http.StatusNotFound,
	auth.ErrAuthenticationFailed:   http.StatusUnauthorized,
	auth.ErrBanned:                 http.StatusTooManyRequests,
	session.ErrCSRFMismatch:        http.StatusForbidden,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusNotFound,
	validators.ErrInvalidForm:      http.StatusUnprocessableEntity,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrBanNotFound:           http.StatusNotFound,
	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
	store.ErrEncodingSession:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
