package cli

import "errors"

// ErrNoAPIKey is returned when a command needs rates but no key is configured.
var ErrNoAPIKey = errors.New("no exchange-rate API key configured (set rates.api_key or QUICKCONVERT_API_KEY)")

// ConversionError reports a value the converter or calculator could not
// produce. Message is the text the screen would display.
type ConversionError struct {
	Message string
}

func (e *ConversionError) Error() string {
	return e.Message
}

// ExitCodeConversion is the process exit code for a ConversionError.
const ExitCodeConversion = 2
