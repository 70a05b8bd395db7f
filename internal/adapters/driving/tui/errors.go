package tui

import "errors"

// ErrMissingRouterService is returned when the router service is not provided.
var ErrMissingRouterService = errors.New("tui: router service is required")

// ErrMissingContentService is returned when the content service is not provided.
var ErrMissingContentService = errors.New("tui: content service is required")
