package progress

import "sync"

// studentLocks serializes read-modify-write cycles per student name within
// this process. Two writers racing across processes still last-write-wins.
var studentLocks sync.Map

// LockStudent locks the named student's mutex and returns the unlock func.
//
//	defer progress.LockStudent(name)()
func LockStudent(name string) func() {
	v, _ := studentLocks.LoadOrStore(name, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
