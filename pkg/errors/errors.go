package errors

import "errors"

// ErrOptimisticLock signals a version conflict: the row changed under
// the caller between its read and its write.
var ErrOptimisticLock = errors.New("data sudah diubah oleh proses lain, muat ulang dan coba lagi")
