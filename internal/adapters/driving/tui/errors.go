package tui

import "errors"

// ErrMissingChatSession is returned when the chat session is not provided.
var ErrMissingChatSession = errors.New("tui: chat session is required")

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("tui: document service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
