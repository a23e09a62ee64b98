// Package msg defines the message types used by the TUI's Bubbletea event loop.
//
// The onboarding panel never mutates host state directly; the host drains
// its queued effects after each key press. Animation frames, catalog
// reloads and errors arrive as the messages defined here.
package msg
