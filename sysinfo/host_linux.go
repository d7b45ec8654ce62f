//go:build linux

package sysinfo

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

var cpuInfoPath = "/proc/cpuinfo"

func fillPlatform(s *Snapshot) error {
	fillCPU(s)

	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return errors.Wrap(err, "sysinfo")
	}
	unit := uint64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	s.TotalMemory = uint64(info.Totalram) * unit
	s.FreeMemory = uint64(info.Freeram) * unit

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return errors.Wrap(err, "uname")
	}
	s.PlatformVersion = unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
	return nil
}

// fillCPU reads the CPU model and clock. Containers and sandboxes may hide
// /proc/cpuinfo; the fields then stay empty and print as unknown.
func fillCPU(s *Snapshot) {
	f, err := os.Open(cpuInfoPath)
	if err != nil {
		return
	}
	defer f.Close()

	model, mhz, err := parseCPUInfo(f)
	if err != nil {
		return
	}
	s.CPUModel, s.CPUSpeedMHz = model, mhz
}
