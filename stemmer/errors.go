package stemmer

import "errors"

// ErrUnknownLanguage reports an unsupported Snowball language argument.
var ErrUnknownLanguage = errors.New("stemmer: unknown language")
