// Package shell models the interactive session environment and emits shell
// code for it. Commands never mutate the parent shell directly; they print
// export/alias lines to stdout and a hook snippet installed in the user's rc
// file evaluates them (startup eval for auto-activation, wrapper functions for
// pyctx-setup / pyctx-install).
package shell
