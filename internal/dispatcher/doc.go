// Package dispatcher routes action strings to the handlers that apply
// them to the editor model.
//
// # Architecture
//
// Every action string is "<verb> <noun>[ <argument>]". The vocabulary is
// partitioned into segments, one per verb and noun span (select and set
// are split into a-n and o-z halves). Each segment claims its literal and
// prefix strings in the shared action.Catalog when it is added, so a
// string can never be claimed twice.
//
// The Router keeps the segments in a fixed chain. A segment whose
// partition covers the string resolves it, first as an exact literal and
// then by its longest matching prefix.
//
// # Dispatch
//
// When an action is dispatched:
//
//  1. An ExecutionContext is built with the model, history and UI
//  2. Pre-dispatch hooks are called; an error cancels the action
//  3. The router finds the handling segment (with optional panic recovery)
//  4. An unrecognized or malformed action is tagged with
//     ErrUnrecognizedAction and, when enabled, a suggestion
//  5. Post-dispatch hooks are called
//  6. Metrics are recorded (if enabled)
//
// Release events (Ongoing false) reach the same segment. Only literals
// with a registered release mutation do anything on release; a prefix
// release is still checked against its grammar.
//
// # Usage
//
//	d, err := dispatcher.NewStandard(dispatcher.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	d.SetModel(m)
//	d.SetHistory(h)
//	d.SetUI(ui)
//
//	result := d.DispatchString("select bone Hand_L")
//	if !result.Handled() {
//	    log.Println(result.Error)
//	}
//
// Dispatch is synchronous. Dispatch returns after the handling segment
// has applied the action, so actions take effect in the order they are
// dispatched.
package dispatcher
