// Package mediators contains hub mediators shipped with the daemon.
package mediators

import (
	"context"

	"github.com/rs/zerolog"

	"notifyd/pkg/types"
)

// AuditLogName is the registry name of the built-in audit mediator.
const AuditLogName = "audit-log"

// AuditLog is a mediator that writes every notification it is interested in
// to a structured log. Interests come from daemon configuration.
type AuditLog struct {
	log            zerolog.Logger
	interests      []string
	asyncInterests []string
}

// NewAuditLog builds an audit mediator subscribing to the given names.
func NewAuditLog(log zerolog.Logger, interests, asyncInterests []string) *AuditLog {
	return &AuditLog{
		log:            log.With().Str("mediator", AuditLogName).Logger(),
		interests:      append([]string(nil), interests...),
		asyncInterests: append([]string(nil), asyncInterests...),
	}
}

func (a *AuditLog) Name() string { return AuditLogName }

func (a *AuditLog) NotificationInterests() []string {
	return append([]string(nil), a.interests...)
}

func (a *AuditLog) AsyncNotificationInterests() []string {
	return append([]string(nil), a.asyncInterests...)
}

func (a *AuditLog) HandleNotification(n types.Notification) error {
	a.audit(n)
	return nil
}

func (a *AuditLog) HandleNotificationAsync(ctx context.Context, n types.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.audit(n)
	return nil
}

func (a *AuditLog) OnRegister() {
	a.log.Info().Strs("interests", a.interests).Strs("async_interests", a.asyncInterests).Msg("audit started")
}

func (a *AuditLog) OnRemove() {
	a.log.Info().Msg("audit stopped")
}

func (a *AuditLog) audit(n types.Notification) {
	ev := a.log.Info().Str("name", n.Name)
	if n.Type != "" {
		ev = ev.Str("type", n.Type)
	}
	if s, ok := n.Sender.(string); ok && s != "" {
		ev = ev.Str("sender", s)
	}
	ev.Interface("body", n.Body).Msg("notification")
}
