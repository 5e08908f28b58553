// Package adapter shows the Adapter pattern: a legacy 110V power source is
// wrapped so that it satisfies the 220V interface a client expects.
//
// Pros:
//   - Old and new code work together without editing the old code.
//   - Existing types are reused instead of duplicated.
//   - Supporting another interface is just another adapter.
//
// Cons:
//   - An extra layer makes the code a little more complex.
//   - Every call pays for one more hop through the adapter.
//
// Roles:
//   - Target: the interface the client expects (Target).
//   - Adaptee: the existing type with the wrong interface (OldSystem).
//   - Adapter: converts the adaptee to the target (PowerAdapter).
//   - Client: uses the adaptee through the adapter, seeing only Target (Client).
package adapter

import (
	"fmt"
	"io"
)

// Target is the interface the client expects.
type Target interface {
	ProvidePower() string
}

// OldSystem is the adaptee. Its method does not match Target.
type OldSystem struct{}

// Use110V is the legacy power method.
func (OldSystem) Use110V() string { return "110V 전력 공급 중" }

// PowerAdapter makes an OldSystem usable wherever a Target is needed.
type PowerAdapter struct {
	old *OldSystem
}

// NewPowerAdapter wraps old.
func NewPowerAdapter(old *OldSystem) *PowerAdapter {
	return &PowerAdapter{old: old}
}

// ProvidePower delegates to the legacy method and converts its result.
func (a *PowerAdapter) ProvidePower() string {
	power := a.old.Use110V()
	return power + " => 220V 전력 공급 중"
}

// Client only knows about Target.
type Client struct{}

// UsePower prints whatever power the target provides.
func (Client) UsePower(w io.Writer, target Target) {
	fmt.Fprintln(w, target.ProvidePower())
}

// Demo plugs the legacy system into the client through the adapter.
func Demo(w io.Writer) {
	adapter := NewPowerAdapter(&OldSystem{})
	Client{}.UsePower(w, adapter)
}
