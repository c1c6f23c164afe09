// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger writes audit events on the non-sugared logger so the
// event name stays a stable structured field.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("security_event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("security_event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("security_event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

// TokenTheftAttempt records a redemption attempt by an identity that does
// not own the token. Both identities and the network origin are kept for
// the audit trail.
func (s *SecurityLogger) TokenTheftAttempt(ownerID, requesterID, origin string) {
	s.l.Warn("invite token theft attempt",
		zap.String("security_event", "token_theft_attempt"),
		zap.String("token_owner", ownerID),
		zap.String("requester", requesterID),
		zap.String("origin", origin),
	)
}

func (s *SecurityLogger) TokenRedeemed(ownerID, origin string) {
	s.l.Info("invite token redeemed",
		zap.String("security_event", "token_redeemed"),
		zap.String("token_owner", ownerID),
		zap.String("origin", origin),
	)
}
