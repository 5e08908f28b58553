// Package singleton shows the Singleton pattern: exactly one instance of a
// type for the whole process, plus one well-known way to reach it.
//
// Pros:
//   - The same object is reachable from anywhere in the program.
//   - A resource everyone shares is managed in a single place.
//   - There is only one copy of the state, so nothing needs syncing between copies.
//
// Cons:
//   - Global state is hard to replace with a fake in tests.
//   - Every first access goes through one synchronization point.
//   - Pinning the count to one makes the type harder to extend later.
//
// Roles:
//   - Unexported constructor: newSingleton. Other packages cannot call it.
//   - Package-level instance: the single *Singleton, set once.
//   - Accessor: GetInstance / GetInstanceWith. They create the instance
//     lazily and return it.
//
// sync.Once guards the lazy init, so concurrent first callers still produce a
// single construction.
package singleton

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// Singleton is the type restricted to one instance. Its zero value is not
// the instance; only the accessors hand that out.
type Singleton struct {
	id int64
}

// ID returns the construction number of the instance. Since the constructor
// runs at most once, every caller sees 1.
func (s *Singleton) ID() int64 { return s.id }

var (
	instance *Singleton
	once     sync.Once

	constructions atomic.Int64

	// announce is where GetInstance reports the construction.
	announce io.Writer = os.Stdout
)

// newSingleton is the private constructor. It writes the construction
// message to w.
func newSingleton(w io.Writer) *Singleton {
	n := constructions.Add(1)
	fmt.Fprintln(w, "싱글톤 인스턴스 생성")
	return &Singleton{id: n}
}

// GetInstance returns the process-wide instance, creating it on the first
// call and reporting that on stdout. Safe to call from multiple goroutines
// simultaneously. There is no reset; the instance lives until the process
// exits.
func GetInstance() *Singleton {
	return GetInstanceWith(announce)
}

// GetInstanceWith is GetInstance with the construction message sent to w.
// w is only written to by the call that actually constructs the instance;
// every later call returns the existing instance silently.
func GetInstanceWith(w io.Writer) *Singleton {
	once.Do(func() {
		instance = newSingleton(w)
	})
	return instance
}

// Constructions reports how many times the constructor ran. It is 0 before
// the first access and 1 forever after.
func Constructions() int64 {
	return constructions.Load()
}

// Demo fetches the instance twice and prints whether both are the same
// object. When Demo is the first to touch the instance, the construction
// line comes first on w.
func Demo(w io.Writer) {
	s1 := GetInstanceWith(w)
	s2 := GetInstanceWith(w)

	fmt.Fprintln(w, s1 == s2)
}
