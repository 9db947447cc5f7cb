// Package script runs Lua action scripts against a dispatcher.
//
// Scripts run in a restricted Lua state: only the base, table, string
// and math libraries are opened, and the functions that load code from
// files or strings are removed. A script drives the editor through these
// globals:
//
//	dispatch(text)   -- dispatch an ongoing action; returns status, error
//	release(text)    -- dispatch the release half of a gesture
//	literals()       -- every bindable action string, sorted
//	prefixes()       -- every action prefix, sorted
//	log(message)     -- write to the runner's logger
//
// For example:
//
//	for i = 1, 3 do
//	  dispatch("next bone")
//	end
//	local status, err = dispatch("select keyframe 4")
//	if status ~= "ok" then log(err) end
//
// A strict runner raises a Lua error for any action that is not handled,
// which stops the script.
package script
