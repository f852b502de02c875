package process

import (
	"context"
	"sync"
	"time"
)

const (
	exitTimeout = 5 * time.Second
)

type ctxKey string

const (
	rootWgKey ctxKey = "__root_wg_key__"
)

// GetRootWaitGroup extracts the process-level wait group installed by
// GetRootContext, or nil if ctx carries none.
func GetRootWaitGroup(ctx context.Context) *sync.WaitGroup {
	v := ctx.Value(rootWgKey)
	if wg, ok := v.(*sync.WaitGroup); ok {
		return wg
	}

	return nil
}

// GetRootContext builds the process root context. The returned wait
// function blocks until everything registered on the root wait group has
// finished, but gives up after a grace period so a stuck child cannot
// stall exit forever.
func GetRootContext() (context.Context, context.CancelFunc, func()) {
	rootWg := &sync.WaitGroup{}
	rootCtx, rootCancel := context.WithCancel(context.Background())
	rootCtx = context.WithValue(rootCtx, rootWgKey, rootWg)

	waitFn := func() {
		exitCtx, exitCancel := context.WithTimeout(context.Background(), exitTimeout)
		defer exitCancel()

		waitDone := make(chan struct{})
		go func() {
			rootWg.Wait()
			close(waitDone)
		}()

		select {
		case <-exitCtx.Done():
		case <-waitDone:
		}
	}

	return rootCtx, rootCancel, waitFn
}
