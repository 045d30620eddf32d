package env_config

import (
	"fmt"
	"os"
	"strings"
)

var (
	WINDOW_TRACE  = checkWindowTrace()
	STATE_BACKEND = checkStateBackend()
)

func checkWindowTrace() bool {
	windowTraceStr := os.Getenv("WINDOW_TRACE")
	windowTrace := windowTraceStr == "true" || windowTraceStr == "1"
	fmt.Fprintf(os.Stderr, "env str: %s, window trace: %v\n", windowTraceStr, windowTrace)
	return windowTrace
}

func checkStateBackend() string {
	backend := os.Getenv("STATE_BACKEND")
	if backend == "" {
		backend = "mem"
	}
	fmt.Fprintf(os.Stderr, "state backend: %s\n", backend)
	return backend
}

func GetRedisAddr() []string {
	rawAddr := os.Getenv("REDIS_ADDR")
	if rawAddr == "" {
		return nil
	}
	return strings.Split(rawAddr, ",")
}
