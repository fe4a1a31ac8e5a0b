package bewire

import "github.com/pkg/errors"

// ErrInsufficientData is the only decode failure kind: a decode step needed
// more bytes than remain between the cursor and the end of the buffer.
//
// Decode helpers wrap it with positional context, so match it with
// errors.Is rather than equality.
var ErrInsufficientData = errors.New("bewire: insufficient data")
