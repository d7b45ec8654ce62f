package logger

import (
	"encoding/json"
	"strconv"

	"github.com/valyala/fasttemplate"

	"github.com/philipp01105/fanlog/core"
	"github.com/philipp01105/fanlog/sysinfo"
)

// DefaultProcessInfoTitle heads ProcessInfo when no title is given
const DefaultProcessInfoTitle = "Process Info"

var processInfoLines = []*fasttemplate.Template{
	fasttemplate.New("CPU: {{cpu_model}} @ {{cpu_speed}} MHz", "{{", "}}"),
	fasttemplate.New("Cores: {{cpu_cores}}", "{{", "}}"),
	fasttemplate.New("Memory: {{mem_free}} GB free / {{mem_total}} GB total", "{{", "}}"),
	fasttemplate.New("Heap limit: {{heap_limit}}", "{{", "}}"),
	fasttemplate.New("Go version: {{runtime_version}}", "{{", "}}"),
	fasttemplate.New("Platform: {{platform_version}}", "{{", "}}"),
	fasttemplate.New("Exec args: {{exec_args}}", "{{", "}}"),
}

// ProcessInfo prints host and runtime facts between a titled section
// and a blank one. The lines are printed at InfoLevel, so they carry
// the timestamp and namespace.
func (l *Logger) ProcessInfo(title string) {
	if title == "" {
		title = DefaultProcessInfoTitle
	}

	l.Section(title)
	defer l.Section("")

	snap, err := l.sysinfo.Snapshot()
	if err != nil {
		l.Error("process info unavailable:", err)
		return
	}

	values := processInfoValues(snap)
	for _, t := range processInfoLines {
		l.logLevel(core.InfoLevel, t.ExecuteString(values))
	}
}

func processInfoValues(s sysinfo.Snapshot) map[string]interface{} {
	model := s.CPUModel
	if model == "" {
		model = "unknown"
	}
	speed := "?"
	if s.CPUSpeedMHz > 0 {
		speed = strconv.FormatFloat(s.CPUSpeedMHz, 'f', 0, 64)
	}
	heap := "unlimited"
	if s.HeapLimit > 0 {
		heap = strconv.FormatUint(s.HeapLimit>>20, 10) + " MB"
	}

	args := s.ExecArgs
	if args == nil {
		args = []string{}
	}
	// A []string always marshals.
	encoded, _ := json.Marshal(args)

	return map[string]interface{}{
		"cpu_model":        model,
		"cpu_speed":        speed,
		"cpu_cores":        strconv.Itoa(s.CPUCores),
		"mem_free":         gib(s.FreeMemory),
		"mem_total":        gib(s.TotalMemory),
		"heap_limit":       heap,
		"runtime_version":  s.RuntimeVersion,
		"platform_version": s.PlatformVersion,
		"exec_args":        string(encoded),
	}
}

func gib(b uint64) string {
	return strconv.FormatFloat(float64(b)/(1<<30), 'f', 1, 64)
}
