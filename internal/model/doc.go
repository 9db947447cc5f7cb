// Package model declares the editor model that action handlers mutate.
//
// The dispatcher is a pure consumer of these interfaces: it never keeps
// selection or option state of its own. Implementations own the loaded
// models (source and target), the bone mapping, and the view options.
//
// Selectable entities share the Navigator capability (next/previous);
// entity-specific setters are declared on the entity interfaces.
package model
