package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorySink_Deliver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink := NewDirectorySink(dir)

	artifact := Artifact{
		Filename:    "out.csv",
		ContentType: "text/csv",
		Data:        []byte("a;b\n"),
	}
	require.NoError(t, sink.Deliver(context.Background(), artifact))

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a;b\n", string(data))
}

func TestDirectorySink_RequiresFilename(t *testing.T) {
	sink := NewDirectorySink(t.TempDir())
	err := sink.Deliver(context.Background(), Artifact{Data: []byte("x")})
	assert.Error(t, err)
}
