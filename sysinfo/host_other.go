//go:build !linux

package sysinfo

import "runtime"

func fillPlatform(s *Snapshot) error {
	s.PlatformVersion = runtime.GOOS + "/" + runtime.GOARCH
	return nil
}
