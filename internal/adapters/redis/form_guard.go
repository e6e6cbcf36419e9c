package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/careerhub/portal/internal/domain/material"
	"github.com/careerhub/portal/internal/ports"
)

const (
	phaseSubmitting = "submitting"
	phaseClosed     = "closed"

	// DefaultSubmitTTL bounds how long a crashed submit can block its form.
	DefaultSubmitTTL = 2 * time.Minute
	// DefaultClosedTTL is how long a completed form token is remembered.
	DefaultClosedTTL = 24 * time.Hour
)

var _ ports.FormGuard = (*FormGuard)(nil)

// FormGuard tracks form submit phases under "form:<token>". An absent key means
// the form is editable; a failed submit deletes the key so the user can retry.
type FormGuard struct {
	client    redis.UniversalClient
	prefix    string
	submitTTL time.Duration
	closedTTL time.Duration
}

// NewFormGuard creates a FormGuard with the default TTLs.
func NewFormGuard(client redis.UniversalClient) *FormGuard {
	return &FormGuard{
		client:    client,
		prefix:    "form:",
		submitTTL: DefaultSubmitTTL,
		closedTTL: DefaultClosedTTL,
	}
}

// Begin claims the token for one submit.
func (g *FormGuard) Begin(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("form token cannot be empty")
	}
	key := g.prefix + token

	status, err := g.client.SetArgs(ctx, key, phaseSubmitting, redis.SetArgs{Mode: "NX", TTL: g.submitTTL}).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis SET NX: %w", err)
	}
	if status == "OK" {
		return nil
	}

	phase, err := g.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		// The holder finished and failed between our two calls; report in-flight
		// rather than racing it for the key.
		return material.ErrSubmitInFlight
	case err != nil:
		return fmt.Errorf("redis get: %w", err)
	case phase == phaseClosed:
		return material.ErrFormClosed
	default:
		return material.ErrSubmitInFlight
	}
}

// Finish closes the token on success and releases it on failure.
func (g *FormGuard) Finish(ctx context.Context, token string, success bool) error {
	if token == "" {
		return nil
	}
	key := g.prefix + token
	if success {
		return g.client.Set(ctx, key, phaseClosed, g.closedTTL).Err()
	}
	return g.client.Del(ctx, key).Err()
}
