// Package steam locates Steam installations and answers questions about
// them: which steamapps library roots exist, what a given app id is called,
// and where the userdata tree lives.
//
// Discovery starts from platform-specific base candidates (plus any extras
// from config), follows libraryfolders.vdf listings to additional drives,
// and reads appmanifest files for display names. All filesystem access goes
// through the Probe interface so behaviour is testable against synthetic
// installs.
package steam
