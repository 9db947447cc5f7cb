// Package hook runs code around every dispatch.
//
// Pre-dispatch hooks see the action before it is routed and may cancel it
// by returning an error; the dispatcher reports the action as cancelled
// with that error. Post-dispatch hooks see every result, including
// cancelled ones, and may rewrite it.
//
// The editor registers four hooks:
//
//	PriorityTiming       TimingHook        logs dispatch durations
//	PriorityAudit        AuditHook         logs each action and its result
//	PriorityWireFormat   NewWireFormatHook rejects control characters
//	PriorityUnrecognized UnrecognizedHook  counts and reports unhandled actions
//
// Pre-dispatch hooks run from the highest priority down and post-dispatch
// hooks from the lowest up, so timing wraps the whole dispatch and the
// unrecognized report is written before the audit entry.
//
//	m := hook.NewManager()
//	m.Register(hook.NewAuditHook(logger))
//	m.Register(hook.NewWireFormatHook())
//	if err := m.RunPreDispatch(&a, ctx); err == nil {
//	    result := route(a, ctx)
//	    m.RunPostDispatch(&a, ctx, &result)
//	}
package hook
