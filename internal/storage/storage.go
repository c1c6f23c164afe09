// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package storage implements the PostgreSQL persistence layer for projects,
// applications and invite tokens.
package storage

import (
	"github.com/ethosgate/access-service/internal/db"
	"github.com/ethosgate/access-service/internal/logging"
	"github.com/ethosgate/access-service/internal/monitoring"
	"github.com/ethosgate/access-service/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
