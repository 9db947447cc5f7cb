// Package history provides undo/redo checkpoints for the editor model.
//
// A checkpoint is a snapshot of model state taken before a user-visible
// change. The History keeps two stacks:
//
//	h := history.New(100) // keep at most 100 checkpoints
//	h.Attach(model)       // model implements Snapshotter
//
//	h.Checkpoint("rename bone")
//	h.Undo()    // save the current state, restore the latest checkpoint
//	h.Redo()    // restore the checkpoint that was undone
//	h.RedoAll() // restore the state before the first Undo
//
// Creating a checkpoint discards every undone checkpoint. The first Undo
// after an edit pushes the current state onto the redo stack, so Redo
// always returns to where the Undo started. That saved state is restored
// but not kept as a checkpoint, so a later Undo steps back to the latest
// real checkpoint.
package history
