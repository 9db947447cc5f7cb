// Package view provides the handlers for the reset, toggle, view and warp
// verbs. These act on display options and pointer state more than on the
// loaded models themselves.
package view
