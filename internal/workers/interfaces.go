// Package workers manages the client's background workers.
//
// A [Worker] is any job with a Start/Stop lifecycle; [Workers] starts and
// stops a set of them as one unit.
package workers

import "context"

// Worker is a background job. Start must not block; Stop blocks until the
// job has exited and is safe to call on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
