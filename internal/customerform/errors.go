package customerform

import "errors"

// ErrSubmitterRequired возвращается, если не задан Submitter
var ErrSubmitterRequired = errors.New("customer form: submitter is required")
