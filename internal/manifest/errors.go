package manifest

import "errors"

// Sentinel errors for manifest loading and validation
var (
	// ErrNoProfiles indicates the manifest has no profiles defined
	ErrNoProfiles = errors.New("manifest has no profiles")

	// ErrEmptyRoot indicates a profile is missing the required root field
	ErrEmptyRoot = errors.New("profile root is required")

	// ErrDuplicateOutput indicates two profiles write the same artifact
	ErrDuplicateOutput = errors.New("duplicate profile output")

	// ErrInvalidFormat indicates the file is not valid YAML/JSON
	ErrInvalidFormat = errors.New("invalid manifest format")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported manifest extension")
)
