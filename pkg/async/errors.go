package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the computation does not
// complete within the allotted time.
var ErrTimeout = errors.New("async: await timed out")
