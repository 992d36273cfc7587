// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the menu state machine that moves between
// the calculator, the settings menu and exit, decoupled from any specific
// entrypoint like a CLI.
package app
