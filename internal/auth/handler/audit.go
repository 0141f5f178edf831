package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	auditPhaseRequest  = "request"
	auditPhaseResponse = "response"
	auditPhaseError    = "error"

	// Logged in place of a payload that is not representable as JSON. The
	// wrapped call itself is never affected.
	unserializablePayload = "payload could not be serialized"
)

// AuditLogger wraps privileged operations and emits paired request/response
// records linked by a trace id. Wrapping is explicit at the route definition;
// an operation is audited because it was passed to Wrap, nothing else.
type AuditLogger struct {
	logger *zap.Logger
}

func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// Wrap returns a handler that records the inbound request, invokes op, then
// records its outcome. Each physical invocation gets a fresh trace id.
// Failures are logged and re-raised unmodified; the wrapper never swallows or
// transforms the underlying error.
func (a *AuditLogger) Wrap(op fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := uuid.NewString()

		a.emit(auditPhaseRequest, traceID, c, c.Body())

		if err := op(c); err != nil {
			a.logger.Error("admin api failure",
				zap.String("phase", auditPhaseError),
				zap.String("trace_id", traceID),
				zap.String("url", c.OriginalURL()),
				zap.String("error", err.Error()))
			return err
		}

		a.emit(auditPhaseResponse, traceID, c, c.Response().Body())

		return nil
	}
}

func (a *AuditLogger) emit(phase, traceID string, c *fiber.Ctx, body []byte) {
	fields := []zap.Field{
		zap.String("phase", phase),
		zap.String("trace_id", traceID),
		zap.String("method", c.Method()),
		zap.String("url", c.OriginalURL()),
		actorField(c),
		payloadField(body),
	}

	a.logger.Info("admin api "+phase, fields...)
}

func actorField(c *fiber.Ctx) zap.Field {
	if claims, ok := ClaimsFromCtx(c); ok {
		return zap.Int64("actor_user_id", claims.UserID)
	}
	return zap.Any("actor_user_id", nil)
}

func payloadField(body []byte) zap.Field {
	if len(body) == 0 {
		return zap.Any("payload", nil)
	}
	if !json.Valid(body) {
		return zap.String("payload", unserializablePayload)
	}
	return zap.Any("payload", json.RawMessage(append([]byte(nil), body...)))
}
