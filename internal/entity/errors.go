package entity

import "errors"

var (
	// ErrUnsupportedFormat marks a file whose MIME type is outside the
	// extraction registry. Callers skip the file, they do not fail.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyContent marks an extraction that produced no usable text.
	ErrEmptyContent = errors.New("no text content extracted")

	// ErrEmptyMessage is returned when a chat request carries no message.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrMessageTooLong is returned when a chat message exceeds the
	// accepted length.
	ErrMessageTooLong = errors.New("message is too long")
)
