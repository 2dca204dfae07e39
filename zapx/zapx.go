/*
   Copyright 2025 The TYL Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package zapx integrates tyl-errors with go.uber.org/zap: it flattens an
// error's kind, classification and context into structured fields and emits
// log entries honoring the process-wide settings.
package zapx

import (
	"go.uber.org/zap"

	tylerrors "github.com/the-yaml-life/tyl-errors"
)

// Fields flattens an error into zap fields. The shape is stable:
//
//	error_kind, error_category, error_retriable, error_message,
//	error_id + occurred_at (when a context is attached),
//	ctx_<key> for every context annotation,
//	error_cause (when an underlying cause is attached).
//
// Nil errors produce no fields.
func Fields(e *tylerrors.Error) []zap.Field {
	if e == nil {
		return nil
	}
	fields := []zap.Field{
		zap.String("error_kind", e.ErrorKind()),
		zap.String("error_category", e.ErrorCategory()),
		zap.Bool("error_retriable", e.Retriable()),
		zap.String("error_message", e.Message),
	}
	if ctx := e.Context; ctx != nil {
		fields = append(fields,
			zap.String("error_id", ctx.ID().String()),
			zap.Time("occurred_at", ctx.OccurredAt()),
		)
		for _, p := range ctx.Metadata() {
			fields = append(fields, zap.String("ctx_"+p.Key, p.Value))
		}
	}
	if e.Cause != nil {
		fields = append(fields, zap.NamedError("error_cause", e.Cause))
	}
	return fields
}

// Log emits the error on the given logger at the level configured by
// TYL_ERROR_LOG_LEVEL. It is a no-op when TYL_ERROR_LOG_ERRORS is false or
// the error is nil, so call sites never need their own gate.
func Log(logger *zap.Logger, e *tylerrors.Error) {
	if e == nil || logger == nil {
		return
	}
	cfg := tylerrors.Settings()
	if !cfg.LogErrors {
		return
	}
	if ce := logger.Check(cfg.LogLevel, e.Error()); ce != nil {
		ce.Write(Fields(e)...)
	}
}
