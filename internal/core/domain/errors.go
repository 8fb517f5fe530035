package domain

import "go.trai.ch/zerr"

var (
	// ErrRequirementsNotFound is returned when the requirements file does not
	// exist. The run treats this as a reported, normal termination rather
	// than a failure: nothing is downloaded and the process still exits 0.
	ErrRequirementsNotFound = zerr.New("requirements file not found")

	// ErrRequirementsReadFailed is returned when the requirements file exists
	// but cannot be read.
	ErrRequirementsReadFailed = zerr.New("failed to read requirements file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrDestCreateFailed is returned when the packages directory cannot be
	// created.
	ErrDestCreateFailed = zerr.New("failed to create packages directory")

	// ErrDownloadFailed is returned when the package manager exits non-zero
	// for a specifier. It is caught per item; the batch continues.
	ErrDownloadFailed = zerr.New("download failed")
)
