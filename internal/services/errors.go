// Package services implements the business logic of the storefront
// assistant: intent classification, the product repository with its fallback
// chain, the per-turn response orchestration, and settings management.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Note that catalog and model-gateway failures deliberately do NOT appear
// here: those are recovered inside the layer that detects them and converted
// into a fallback tier, never surfaced to callers as errors.
package services

import "errors"

var (
	// ErrEmptyPrompt is returned when a turn is submitted with an empty
	// utterance.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrTooLong is returned when an utterance exceeds the maximum
	// configured length limit.
	ErrTooLong = errors.New("prompt too long")

	// ErrSessionNotFound indicates that the requested chat session does
	// not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidFontSize is returned when a settings update carries a font
	// size outside the allowed set.
	ErrInvalidFontSize = errors.New("font size must be one of: small, medium, large, xlarge")
)
