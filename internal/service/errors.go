package service

import "errors"

// ErrRefreshSuperseded marks a refresh cycle whose result was discarded
// because a newer cycle started while it was in flight.
var ErrRefreshSuperseded = errors.New("refresh superseded by newer cycle")

var persistenceUnconfigured = errors.New("snapshot cache not configured")
