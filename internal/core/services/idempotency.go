package services

import (
	"fmt"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// DeriveIdempotencyKey maps an event's identity to its stable ledger key:
// "{kind}:{tenant}:{event_id}". Replaying the identical event always yields
// the identical key; events of different kinds or tenants can never collide
// because each component is embedded.
func DeriveIdempotencyKey(event domain.Event) (string, error) {
	if event.Tenant() == "" {
		return "", fmt.Errorf("%w: tenant id is empty for %s event", apperrors.ErrMissingIdentity, event.Kind())
	}
	if event.ID() == "" {
		return "", fmt.Errorf("%w: event id is empty for %s event", apperrors.ErrMissingIdentity, event.Kind())
	}
	return fmt.Sprintf("%s:%s:%s", event.Kind(), event.Tenant(), event.ID()), nil
}
