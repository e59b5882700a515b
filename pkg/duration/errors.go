package duration

import "errors"

// ErrUnknownStyle is returned by [ParseStyle] for names other than "short" and "long".
var ErrUnknownStyle = errors.New("unknown style")
