package interfaces

import "context"

// ILocker serializes read-modify-write cycles on a single record.
//
// Lock blocks until key is held or ctx is done. The returned release func must
// be called exactly once.
type ILocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}
