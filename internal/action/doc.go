// Package action defines the action-string protocol of the editor.
//
// An action string is "<verb> <noun>[ <qualifier>]". A literal matches one
// catalog entry exactly and carries no argument. A prefix is
// "<verb> <noun> " (one trailing blank) followed by an argument payload
// whose grammar depends on the prefix; see package arg.
//
// Literal constants live in this package and prefix constants in package
// prefix. The Catalog records which dispatcher segment owns each string,
// rejects duplicates at startup, and pushes every literal to the input
// binding surface through RegisterAll. The strings are a wire format:
// key-binding files store them verbatim.
package action
