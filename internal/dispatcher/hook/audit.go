package hook

import (
	"time"

	"github.com/dshills/rigedit/internal/action"
	"github.com/dshills/rigedit/internal/dispatcher/execctx"
	"github.com/dshills/rigedit/internal/dispatcher/handler"
)

// AuditHook logs every dispatch at debug level and failed ones at error
// level.
type AuditHook struct {
	logger Logger
}

// NewAuditHook creates an audit hook writing to logger.
func NewAuditHook(logger Logger) *AuditHook {
	return &AuditHook{logger: logger}
}

func (h *AuditHook) Name() string       { return "audit" }
func (h *AuditHook) Priority() Priority { return PriorityAudit }

// PreDispatch implements PreDispatchHook.
func (h *AuditHook) PreDispatch(a *action.Action, ctx *execctx.ExecutionContext) error {
	if h.logger != nil {
		h.logger.Debug("dispatch start",
			"action", a.Name,
			"ongoing", a.Ongoing,
			"source", a.Source.String(),
		)
	}
	return nil
}

// PostDispatch implements PostDispatchHook.
func (h *AuditHook) PostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	if h.logger == nil {
		return
	}
	switch result.Status {
	case handler.StatusError:
		h.logger.Error("dispatch failed", "action", a.Name, "error", result.Error)
	case handler.StatusCancelled:
		h.logger.Warn("dispatch cancelled", "action", a.Name, "error", result.Error)
	default:
		h.logger.Debug("dispatch complete",
			"action", a.Name,
			"status", result.Status.String(),
			"message", result.Message,
		)
	}
}

// startedKey holds the dispatch start time on the execution context.
const startedKey = "hook.timing.started"

// TimingHook logs how long each dispatch took. Dispatches slower than the
// threshold are logged as warnings.
type TimingHook struct {
	logger Logger
	slow   time.Duration
	now    func() time.Time
}

// NewTimingHook creates a timing hook. A threshold of zero or less never
// warns.
func NewTimingHook(logger Logger, slow time.Duration) *TimingHook {
	return &TimingHook{logger: logger, slow: slow, now: time.Now}
}

func (h *TimingHook) Name() string       { return "timing" }
func (h *TimingHook) Priority() Priority { return PriorityTiming }

// PreDispatch records the start time.
func (h *TimingHook) PreDispatch(a *action.Action, ctx *execctx.ExecutionContext) error {
	ctx.SetData(startedKey, h.now())
	return nil
}

// PostDispatch logs the elapsed time.
func (h *TimingHook) PostDispatch(a *action.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	v, ok := ctx.GetData(startedKey)
	if !ok || h.logger == nil {
		return
	}
	started, ok := v.(time.Time)
	if !ok {
		return
	}
	elapsed := h.now().Sub(started)
	if h.slow > 0 && elapsed >= h.slow {
		h.logger.Warn("slow dispatch", "action", a.Name, "elapsed", elapsed, "status", result.Status.String())
		return
	}
	h.logger.Debug("dispatch timing", "action", a.Name, "elapsed", elapsed)
}
