package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/events"
)

// ProfileSyncService propagates new accounts to the user-profile service.
// Delivery is single-shot and best-effort: the account row has already
// committed, so a failed notification is logged and swallowed, never rolled
// back and never retried.
type ProfileSyncService struct {
	dispatcher events.Dispatcher
	client     *ProfileClient
	logger     *zap.Logger
	timeout    time.Duration
}

// NewProfileSyncService creates the service.
func NewProfileSyncService(dispatcher events.Dispatcher, client *ProfileClient, logger *zap.Logger, timeout time.Duration) *ProfileSyncService {
	return &ProfileSyncService{
		dispatcher: dispatcher,
		client:     client,
		logger:     logger,
		timeout:    timeout,
	}
}

// RegisterHandlers subscribes to events.
func (p *ProfileSyncService) RegisterHandlers() {
	if p.dispatcher == nil {
		return
	}
	p.dispatcher.Subscribe(events.EventAccountCreated, p.handleAccountCreated)
}

func (p *ProfileSyncService) handleAccountCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AccountCreatedPayload)
	if !ok {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.client.SaveUser(callCtx, payload.PhoneNumber); err != nil {
		p.logger.Warn("profile sync failed",
			zap.Int64("account_id", payload.AccountID),
			zap.Error(err))
		return nil
	}

	p.logger.Info("profile created", zap.Int64("account_id", payload.AccountID))
	return nil
}
