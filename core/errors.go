package core

import "errors"

// ErrInvalidInput marks inputs that would make a downstream formula divide
// or take a log of a non-positive value. Callers match it with errors.Is;
// the wrapped message names the offending input and the computation it
// would have fed.
var ErrInvalidInput = errors.New("invalid input")
