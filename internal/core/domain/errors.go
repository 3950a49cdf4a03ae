package domain

import "errors"

// ErrInvalidCredentials is returned on a failed login. It deliberately does not
// distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when a session token is unknown or expired
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrAlreadyExists is returned when an entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrMissingName is returned when an upload has no name
var ErrMissingName = errors.New("missing name")

// ErrMissingType is returned when an upload kind is not folder, file or image
var ErrMissingType = errors.New("missing type")

// ErrMissingData is returned when a non-folder upload carries no payload
var ErrMissingData = errors.New("missing data")

// ErrInvalidData is returned when an upload payload is not valid base64
var ErrInvalidData = errors.New("invalid data")

// ErrParentNotFound is returned when an upload references an absent parent
var ErrParentNotFound = errors.New("parent not found")

// ErrParentNotFolder is returned when an upload references a parent that is not a folder
var ErrParentNotFolder = errors.New("parent is not a folder")

// ErrNotFound covers both true absence and records the requester may not see
var ErrNotFound = errors.New("not found")

// ErrFolderHasNoContent is returned when content is requested for a folder
var ErrFolderHasNoContent = errors.New("a folder doesn't have content")

// ErrInvalidSize is returned when a requested thumbnail size is not 100, 250 or 500
var ErrInvalidSize = errors.New("invalid size")

// ErrJobNotFound is returned when a job row is absent
var ErrJobNotFound = errors.New("job not found")
