// Package config defines the calculator's settings value and the Loader
// interface used to read settings from files.
//
// `config.Settings` is immutable in practice: it is passed by value, the
// memory seed it points to is never modified, and every change produces a new
// value through methods such as WithRoundNumber. A calculator session takes a
// snapshot of the settings when it starts, so later changes only affect
// sessions started afterwards.
//
// Settings are assembled from three sources, later sources winning:
// Default(), a settings file read by a Loader (see package hcl), and
// environment variables read by ParseEnv.
package config
