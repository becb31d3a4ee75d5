package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoStrings(t *testing.T) {
	info := Info{Version: "1.2.3", BuildDate: "2026-01-02", GitCommit: "abc123", GoVersion: "go1.24.1", Platform: "linux/amd64"}
	assert.Equal(t, "prisma-class-validator version 1.2.3 (linux/amd64 go1.24.1)", info.String())
	assert.Contains(t, info.FullString(), "Git Commit: abc123")
	assert.Contains(t, info.FullString(), "Build Date: 2026-01-02")
}
