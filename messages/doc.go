// Package messages is the message catalog behind every error raised by
// package cplx.
//
// A catalog is plain immutable data: a map from key to a template holding
// positional placeholders {0}, {1}, ... Rendering is a pure function of
// (key, substitutions), so there is no process-wide state to initialize or
// guard.
//
// Usage:
//
//	msg := messages.Format(messages.KeyNotNumeric, "Specified real value")
//	// "Specified real value must be a number."
//
//	de := messages.Default()
//	de[messages.KeyNotNumeric] = "{0} muss eine Zahl sein."
//	msg = de.Format(messages.KeyNotNumeric, "Realteil")
package messages
