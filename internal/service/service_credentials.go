// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kita-inventory/internal/config"
	"github.com/MKhiriev/go-kita-inventory/internal/logger"
	"github.com/MKhiriev/go-kita-inventory/internal/store"
	"github.com/MKhiriev/go-kita-inventory/models"
	"golang.org/x/crypto/bcrypt"
)

// credentialVerifier is the bcrypt-backed implementation of [CredentialVerifier].
type credentialVerifier struct {
	userRepository store.UserRepository

	// cost is the bcrypt work factor for newly hashed passwords.
	cost int

	// dummyHash is compared against when the login is unknown so that both
	// outcomes take one bcrypt comparison.
	dummyHash []byte

	logger *logger.Logger
}

// NewCredentialVerifier returns a [CredentialVerifier] hashing with the
// configured bcrypt cost.
func NewCredentialVerifier(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) (CredentialVerifier, error) {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("kita-inventory-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &credentialVerifier{
		userRepository: userRepository,
		cost:           cost,
		dummyHash:      dummy,
		logger:         logger,
	}, nil
}

// Verify looks the user up by login or email and compares password with the
// stored hash. Unknown users and wrong passwords both yield
// [ErrInvalidCredentials]; storage failures are wrapped and returned as is.
func (c *credentialVerifier) Verify(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := c.userRepository.FindByLoginOrEmail(ctx, login)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(c.dummyHash, []byte(password))
		log.Debug().Str("func", "*credentialVerifier.Verify").Msg("unknown login")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialVerifier.Verify").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("func", "*credentialVerifier.Verify").Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (c *credentialVerifier) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// ChangePassword hashes password and stores it for userID.
func (c *credentialVerifier) ChangePassword(ctx context.Context, userID int64, password string) error {
	hash, err := c.HashPassword(password)
	if err != nil {
		return err
	}

	if err = c.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialVerifier.ChangePassword").Int64("user_id", userID).Msg("failed to store password hash")
		return fmt.Errorf("store password hash: %w", err)
	}

	return nil
}
