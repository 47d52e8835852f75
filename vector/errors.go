package vector

import "errors"

// ErrTruncated indicates the compact byte encoding ended before a complete
// entry could be decoded.
var ErrTruncated = errors.New("vector: truncated compact encoding")

// ErrBadTag indicates a compact-encoding tag byte named a (kind, size)
// combination this codec does not recognize.
var ErrBadTag = errors.New("vector: unrecognized compact encoding tag")

// ErrUnknownAttributeKind indicates an AttributeValue carried a Kind other
// than AttrInt, AttrFloat, or AttrString.
var ErrUnknownAttributeKind = errors.New("vector: unknown attribute kind")
