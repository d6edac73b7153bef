package utils

import (
	"fmt"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// SetParallelDegree picks the worker count: procLimit when positive, the CPU
// count otherwise, never more than the number of work items.
func SetParallelDegree(procLimit, kMax int) (degree int) {
	if procLimit > 0 {
		degree = procLimit
	} else {
		degree = runtime.NumCPU()
	}
	if kMax > 0 && degree > kMax {
		degree = kMax
	}
	if degree < 1 {
		degree = 1
	}
	return
}
