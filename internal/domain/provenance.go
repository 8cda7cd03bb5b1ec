package domain

import (
	"fmt"
	"time"
)

// Provenance identifies one conversion for the history attribute. All
// process-level state (invoking user, tool identity) is passed in
// explicitly so the recorder is testable with fixed inputs.
type Provenance struct {
	Tool    string
	Version string
	User    string
	Input   string
	Output  string
}

// RecordProvenance sets the free-text history attribute: conversion
// timestamp, invoking user, converter identity, and the input/output file
// pair. The exact formatting is advisory audit metadata; nothing parses it.
func RecordProvenance(ds *Dataset, p Provenance) {
	ds.Global.Set("history", fmt.Sprintf("%s: %s %s (user %s) converted %s to %s",
		clock.Now().UTC().Format(time.RFC3339), p.Tool, p.Version, p.User, p.Input, p.Output))
}
