// Package sysinfo gathers the host and runtime facts printed by
// Logger.ProcessInfo. The logger depends only on the Provider
// interface; Host is the default implementation.
package sysinfo

import (
	"math"
	"os"
	"runtime"
	"runtime/debug"
)

// Snapshot is a point-in-time view of the host and the Go runtime.
type Snapshot struct {
	CPUModel    string
	CPUSpeedMHz float64
	CPUCores    int

	// Bytes. Zero when the platform does not report them.
	TotalMemory uint64
	FreeMemory  uint64
	// HeapLimit is the runtime soft memory limit in bytes, zero when unlimited.
	HeapLimit uint64

	RuntimeVersion  string
	PlatformVersion string
	ExecArgs        []string
}

// Provider supplies snapshots.
type Provider interface {
	Snapshot() (Snapshot, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() (Snapshot, error)

// Snapshot calls f.
func (f ProviderFunc) Snapshot() (Snapshot, error) {
	return f()
}

// Static returns a Provider that always yields s.
func Static(s Snapshot) Provider {
	return ProviderFunc(func() (Snapshot, error) { return s, nil })
}

type host struct{}

// Host returns the Provider backed by the running process and OS.
func Host() Provider {
	return host{}
}

func (host) Snapshot() (Snapshot, error) {
	s := Snapshot{
		CPUCores:       runtime.NumCPU(),
		HeapLimit:      heapLimit(),
		RuntimeVersion: runtime.Version(),
		ExecArgs:       append([]string(nil), os.Args...),
	}
	if err := fillPlatform(&s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// heapLimit reads the soft memory limit without changing it.
func heapLimit() uint64 {
	limit := debug.SetMemoryLimit(-1)
	if limit <= 0 || limit == math.MaxInt64 {
		return 0
	}
	return uint64(limit)
}
