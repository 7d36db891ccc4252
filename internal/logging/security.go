// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", "authz_fail:"+resource),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.l.Info(
		"administrative action",
		zap.String("event", "admin_action:"+action),
		zap.String("user_id", userID),
		zap.String("resource", resource),
	)
}
