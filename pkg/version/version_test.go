package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	v := Get()

	assert.Equal(t, Version, v.Version)
	assert.Contains(t, v.Platform, "/")
	assert.NotEmpty(t, v.GoVersion)
}

func TestInfoString(t *testing.T) {
	s := Info{
		Version:   "1.2.3",
		GitCommit: "abcdefg",
		BuildTime: "2026-01-02T03:04:05Z",
		GoVersion: "go1.23.1",
		Platform:  "linux/amd64",
	}.String()

	assert.Equal(t, "foldertext version 1.2.3 (commit: abcdefg) built at 2026-01-02T03:04:05Z with go1.23.1 on linux/amd64", s)
}
