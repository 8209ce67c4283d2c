// Package preflight provides readiness checks for the external tool and
// filesystem paths steamclip depends on.
//
// The CLI "steamclip doctor" command runs RunAll and renders each Result;
// individual check functions are exported so other commands can reuse them.
// All checks are local (binary lookup, directory probes, Steam root
// discovery) and never touch the network.
package preflight
