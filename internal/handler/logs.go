package handler

import (
    "net/http" // HTTP status codes

    "github.com/iliyamo/pc-capacity-market/internal/audit"
    "github.com/labstack/echo/v4"
)

// LogHandler serves the execution log on demand, the equivalent of the
// prototype's "View Logs" button.  Logs are pulled, never pushed.
type LogHandler struct {
    Audit *audit.Logger
}

// NewLogHandler constructs a LogHandler and panics on a nil logger.
func NewLogHandler(auditLog *audit.Logger) *LogHandler {
    if auditLog == nil {
        panic("nil audit logger passed to NewLogHandler")
    }
    return &LogHandler{Audit: auditLog}
}

// ViewLogs handles GET /v1/logs.  It returns the whole audit file as
// plain text; a log that does not exist yet reads as empty.
func (h *LogHandler) ViewLogs(c echo.Context) error {
    content, err := h.Audit.Read()
    if err != nil {
        c.Logger().Errorf("read audit log: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read logs"})
    }
    return c.String(http.StatusOK, content)
}
