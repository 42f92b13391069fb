package journal

import "fmt"

// PersistenceError wraps a durable-storage failure. The store never retries;
// the caller decides whether to.
type PersistenceError struct {
	Op  string // "insert", "select", "delete", "open"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("journal: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
