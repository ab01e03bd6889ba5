package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedReference is returned when an output reference does not split into
	// exactly two non-empty parts on the "::" separator.
	ErrMalformedReference = zerr.New("malformed output reference")

	// ErrInvalidNodeName is returned when a node name is empty or contains the reference separator.
	ErrInvalidNodeName = zerr.New("invalid node name")

	// ErrUnknownNode is returned when neither node system recognizes a node name.
	ErrUnknownNode = zerr.New("unknown node")

	// ErrUnknownNodeType is returned when neither node system can create a node of the requested type.
	ErrUnknownNodeType = zerr.New("unknown node type")

	// ErrNodeAlreadyExists is returned when attempting to add a node with a name that is already registered.
	ErrNodeAlreadyExists = zerr.New("node already exists")

	// ErrDomainConflict is returned when both node systems claim ownership of the same node name.
	ErrDomainConflict = zerr.New("node claimed by both domains")

	// ErrBridgeFailure is returned when an object is missing or cannot be converted while
	// crossing between domains. It indicates a resolution bug upstream and is never retried.
	ErrBridgeFailure = zerr.New("object bridge failure")

	// ErrEvaluationFailed is returned when a node system fails to evaluate a node.
	ErrEvaluationFailed = zerr.New("node evaluation failed")

	// ErrUnknownSocket is returned when a node is wired or parameterized through a
	// socket its type does not declare.
	ErrUnknownSocket = zerr.New("unknown socket")

	// ErrObjectNotFound is returned by node systems when no object is stored under a reference.
	ErrObjectNotFound = zerr.New("object not found")

	// ErrPlayerNotInitialized is returned when a tick is requested before the player was initialized.
	ErrPlayerNotInitialized = zerr.New("player not initialized")

	// ErrNoTargetsSpecified is returned when no targets are specified for evaluation.
	ErrNoTargetsSpecified = zerr.New("no targets specified")

	// ErrUnsupportedVersion is returned when a project file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported project version")
)
