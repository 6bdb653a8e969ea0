package herald

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrInvalidAddress indicates a recipient or sender address failed to parse.
	ErrInvalidAddress = errors.New("malformed email address")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates no body content was provided.
	ErrNoContent = errors.New("email must have body content")

	// ErrInvalidTable indicates table data whose rows do not match the
	// declared columns.
	ErrInvalidTable = errors.New("table rows must match column count")

	// ErrAttachmentNotFound indicates an attachment path did not resolve to a
	// readable file.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrTemplateNotFound indicates the template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrLayoutNotFound indicates the layout file was not found.
	ErrLayoutNotFound = errors.New("layout not found")

	// ErrRenderFailed indicates template rendering failed.
	ErrRenderFailed = errors.New("failed to render template")

	// ErrInvalidFrontmatter indicates invalid YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")

	// ErrConnectionFailed indicates the relay was unreachable or rejected
	// the credentials.
	ErrConnectionFailed = errors.New("failed to connect to mail server")

	// ErrSendFailed indicates the relay rejected the message.
	ErrSendFailed = errors.New("failed to send email")
)
