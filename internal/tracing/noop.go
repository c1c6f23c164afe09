// Copyright 2026 EthosGate Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"go.opentelemetry.io/otel/trace/noop"
)

func NewNoopTracer() *Tracer {
	t := new(Tracer)
	t.tracer = noop.NewTracerProvider().Tracer(tracerName)
	return t
}
