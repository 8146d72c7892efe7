package command

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name    string
		baseDir string
		path    string
		want    string
	}{
		{name: "no base dir", baseDir: "", path: "a/b.h", want: "a/b.h"},
		{name: "relative joined", baseDir: "/srv/tune", path: "data/w.h", want: "/srv/tune/data/w.h"},
		{name: "absolute kept", baseDir: "/srv/tune", path: "/tmp/w.h", want: "/tmp/w.h"},
		{name: "std stream kept", baseDir: "/srv/tune", path: "-", want: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePath(tt.baseDir, tt.path))
		})
	}
}

func TestReadWrite_BaseDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)

	require.NoError(t, WriteSink(nil, dir, "out/nested/t.txt", "hello"))
	data, err := os.ReadFile(filepath.Join(dir, "out", "nested", "t.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	got, err := ReadSource(nil, dir, "out/nested/t.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, after, "working directory must not change")
}

func TestReadWrite_StdStream(t *testing.T) {
	got, err := ReadSource(strings.NewReader("from stdin"), "/ignored", StdStream)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	var buf bytes.Buffer
	require.NoError(t, WriteSink(&buf, "/ignored", StdStream, "to stdout"))
	assert.Equal(t, "to stdout", buf.String())
}

func TestReadSource_Missing(t *testing.T) {
	_, err := ReadSource(nil, t.TempDir(), "missing.h")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read source")
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, "debug"))
	require.Error(t, SetupLogger(&buf, "loud"))
	require.NoError(t, SetupLogger(&buf, "info"))
}
