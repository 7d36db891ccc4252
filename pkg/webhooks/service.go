// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/vault-service/internal/logging"
	"github.com/canonical/vault-service/internal/monitoring"
	"github.com/canonical/vault-service/internal/storage"
	"github.com/canonical/vault-service/internal/tracing"
	"github.com/canonical/vault-service/internal/types"
)

var ErrInvalidPayload = errors.New("invalid webhook payload")

type Service struct {
	storage       StorageInterface
	linker        LinkerInterface
	tx            TxRunnerInterface
	trialDuration time.Duration
	now           func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	linker LinkerInterface,
	tx TxRunnerInterface,
	trialDuration time.Duration,
	now func() time.Time,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:       storage,
		linker:        linker,
		tx:            tx,
		trialDuration: trialDuration,
		now:           now,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// HandleRegistration stores the new account on a trial and links invitations
// sent to its email before it existed, both in one transaction.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email, name string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	email = strings.ToLower(strings.TrimSpace(email))
	if identityID == "" || email == "" {
		return nil, fmt.Errorf("%w: identity ID or email is empty", ErrInvalidPayload)
	}

	expiresAt := s.now().Add(s.trialDuration)

	var user *types.User
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateUser(ctx, &types.User{
			ID:                 identityID,
			Email:              email,
			Name:               name,
			SubscriptionStatus: types.SubscriptionTrial,
			TrialExpiresAt:     &expiresAt,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		if _, err := s.linker.LinkByEmail(ctx, email, created.ID); err != nil {
			return fmt.Errorf("failed to link invitations: %w", err)
		}

		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("Successfully registered user %s", user.ID)
	return user, nil
}

func (s *Service) HandleSubscription(ctx context.Context, event *SubscriptionEvent) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleSubscription")
	defer span.End()

	if event == nil || event.UserID == "" || !event.Status.Valid() {
		return fmt.Errorf("%w: missing user or unknown status", ErrInvalidPayload)
	}

	// an expiry only means something for trials
	expiresAt := event.TrialExpiresAt
	if event.Status != types.SubscriptionTrial {
		expiresAt = nil
	}

	err := s.storage.UpdateSubscription(ctx, event.UserID, event.Status, expiresAt)
	if errors.Is(err, storage.ErrNotFound) {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	s.logger.Security().AdminAction(event.UserID, "subscription:"+string(event.Status), "user:"+event.UserID)
	return nil
}
