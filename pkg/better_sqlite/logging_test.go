package better_sqlite

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogHook(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	db, err := NewBuilder(MemoryPath).WithVerboseHook(SlogHook(logger)).Build()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Exec("CREATE TABLE t(x)"))
	assert.Contains(t, buf.String(), `msg="sqlite statement"`)
	assert.Contains(t, buf.String(), `sql="CREATE TABLE t(x)"`)

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, nil))
	SlogHook(quiet)("SELECT 1")
	assert.Empty(t, buf.String())
}
