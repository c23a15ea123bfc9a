package vpk

import "errors"

// Sentinel errors for package vpk.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Archive errors
	ErrCorruptContainer = errors.New("archive cannot be opened or indexed")
	ErrPackFailed       = errors.New("cannot write merged archive")
	ErrUnsafeEntryPath  = errors.New("entry path escapes the extraction root")

	// File and directory errors
	ErrExpectedDirectory = errors.New("expected directory but got file")
)
