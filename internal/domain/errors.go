package domain

import "errors"

var (
	ErrConfiguration      = errors.New("missing required host configuration")
	ErrUnauthorized       = errors.New("user is not allowed to use the segmenter")
	ErrNoRestorableSkills = errors.New("resource has no restorable skills")
	ErrRemoteCall         = errors.New("workforce api call failed")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrEmptySelection     = errors.New("no resources selected")
	ErrTransitionInFlight = errors.New("a transition is already running")
	ErrUnknownPool        = errors.New("unknown pool")
	ErrNotPoolMarker      = errors.New("skill is not a pool marker")
	ErrResourceNotFound   = errors.New("resource not found")
)
