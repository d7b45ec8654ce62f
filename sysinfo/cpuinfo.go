package sysinfo

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseCPUInfo returns the first model name and clock speed found in
// /proc/cpuinfo formatted input.
func parseCPUInfo(r io.Reader) (model string, mhz float64, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "model name", "Model", "cpu model":
			if model == "" {
				model = value
			}
		case "cpu MHz":
			if mhz == 0 {
				if f, perr := strconv.ParseFloat(value, 64); perr == nil {
					mhz = f
				}
			}
		}
		if model != "" && mhz != 0 {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", 0, errors.Wrap(err, "read cpuinfo")
	}
	return model, mhz, nil
}
