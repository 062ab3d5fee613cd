// File: utils/constants.go
package utils

// SessionPrefix is the prefix of Redis keys holding browser sessions.
const SessionPrefix = "session:"

// WizardPrefix is the prefix of Redis keys holding booking wizard state.
const WizardPrefix = "wizard:"
