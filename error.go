package graph

import (
	"fmt"
)

// Kind identifies the class of an Error.
type Kind int

// Kinds of errors returned by graph operations.
const (
	KindUnknown Kind = iota
	KindNodeIDNonExistent
	KindNodeInputPortInvalid
	KindNodeNoMoreInputs
	KindNodeConnectingToItself
	KindConnectionAlreadyExists
	KindNodeParentAlreadyExists
	KindCannotAddSinkTypeNode
	KindInvalidBufferSize
	KindInvalidSamplingFrequency
	KindNilNode
)

// Sentinel errors, one per kind. Errors returned by the graph carry
// more context in their message, but match these with errors.Is.
var (
	ErrNodeIDNonExistent        = &Error{Kind: KindNodeIDNonExistent, Message: "node id does not exist"}
	ErrNodeInputPortInvalid     = &Error{Kind: KindNodeInputPortInvalid, Message: "node input port is invalid"}
	ErrNodeNoMoreInputs         = &Error{Kind: KindNodeNoMoreInputs, Message: "node has no more free inputs"}
	ErrNodeConnectingToItself   = &Error{Kind: KindNodeConnectingToItself, Message: "node cannot be connected to itself"}
	ErrConnectionAlreadyExists  = &Error{Kind: KindConnectionAlreadyExists, Message: "connection already exists"}
	ErrNodeParentAlreadyExists  = &Error{Kind: KindNodeParentAlreadyExists, Message: "node already has a parent"}
	ErrCannotAddSinkTypeNode    = &Error{Kind: KindCannotAddSinkTypeNode, Message: "sink type node cannot be added"}
	ErrInvalidBufferSize        = &Error{Kind: KindInvalidBufferSize, Message: "buffer size must be positive"}
	ErrInvalidSamplingFrequency = &Error{Kind: KindInvalidSamplingFrequency, Message: "sampling frequency must be positive"}
	ErrNilNode                  = &Error{Kind: KindNilNode, Message: "node is nil"}
)

// Error is returned by graph operations that would violate topology
// invariants or receive an invalid configuration. Graph state is left
// unchanged when an Error is returned.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (k Kind) String() string {
	switch k {
	case KindNodeIDNonExistent:
		return "node id non-existent"
	case KindNodeInputPortInvalid:
		return "node input port invalid"
	case KindNodeNoMoreInputs:
		return "node no more inputs"
	case KindNodeConnectingToItself:
		return "node connecting to itself"
	case KindConnectionAlreadyExists:
		return "connection already exists"
	case KindNodeParentAlreadyExists:
		return "node parent already exists"
	case KindCannotAddSinkTypeNode:
		return "cannot add sink type node"
	case KindInvalidBufferSize:
		return "invalid buffer size"
	case KindInvalidSamplingFrequency:
		return "invalid sampling frequency"
	case KindNilNode:
		return "nil node"
	}
	return "unknown"
}
