// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the inventory server.
//
// The only integration today is [Mailer], used to deliver password-reset
// links. [NewMailer] returns an HTTP relay implementation when a relay URL is
// configured and a log-only implementation otherwise.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on relay failures.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kita-inventory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers a single message. Implementations fill in the sender when
// mail.From is empty.
type Mailer interface {
	Send(ctx context.Context, mail models.Mail) error
}
