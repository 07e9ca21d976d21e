package async

import "errors"

// ErrInvalidPoolSize is returned by NewPool for a size below one.
var ErrInvalidPoolSize = errors.New("async.invalid_pool_size")
