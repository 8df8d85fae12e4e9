package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/HikaruIzuno/dailyreport-system/internal/shared/contextutil"
)

// StdoutAuditLogger writes audit entries through the process-wide zap
// logger, tagging each entry with the request id when the context carries
// one so lifecycle events can be correlated with request logs.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("dailyreport.audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
