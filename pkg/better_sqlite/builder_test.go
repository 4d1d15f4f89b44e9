package better_sqlite

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderDefaults(t *testing.T) {
	b := NewBuilder("app.db")

	assert.Equal(t, "app.db", b.Path())
	assert.False(t, b.Readonly())
	assert.False(t, b.FileMustExist())
	assert.Equal(t, DefaultTimeout, b.Timeout())

	_, ok := b.VerboseHook()
	assert.False(t, ok)
	_, ok = b.NativeBinding()
	assert.False(t, ok)
}

func TestBuilderIsImmutable(t *testing.T) {
	base := NewBuilder("app.db")
	ro := base.WithReadonly(true).WithTimeout(time.Second).WithNativeBinding("custom")

	assert.False(t, base.Readonly())
	assert.Equal(t, DefaultTimeout, base.Timeout())
	_, ok := base.NativeBinding()
	assert.False(t, ok)

	assert.True(t, ro.Readonly())
	assert.Equal(t, time.Second, ro.Timeout())
	name, ok := ro.NativeBinding()
	assert.True(t, ok)
	assert.Equal(t, "custom", name)
}

func TestOptionsFrom(t *testing.T) {
	opts := optionsFrom(NewBuilder("app.db"))
	assert.Equal(t, options{timeout: DefaultTimeout}, opts)
	assert.Nil(t, opts.verbose)
	assert.Nil(t, opts.nativeBinding)

	called := false
	opts = optionsFrom(NewBuilder("app.db").
		WithReadonly(true).
		WithFileMustExist(true).
		WithTimeout(1500 * time.Millisecond).
		WithVerboseHook(func(string) { called = true }).
		WithNativeBinding("custom"))

	assert.True(t, opts.readonly)
	assert.True(t, opts.fileMustExist)
	assert.Equal(t, 1500*time.Millisecond, opts.timeout)
	require.NotNil(t, opts.nativeBinding)
	assert.Equal(t, "custom", *opts.nativeBinding)
	require.NotNil(t, opts.verbose)
	opts.verbose("SELECT 1")
	assert.True(t, called)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		builder Builder
		wantErr string
	}{
		{"defaults", "app.db", NewBuilder("app.db"), ""},
		{"zero timeout", "app.db", NewBuilder("app.db").WithTimeout(0), ""},
		{"negative timeout", "app.db", NewBuilder("app.db").WithTimeout(-time.Millisecond), "positive integer"},
		{"sub-millisecond negative timeout", "app.db", NewBuilder("app.db").WithTimeout(-1), "positive integer"},
		{"sub-millisecond timeout", "app.db", NewBuilder("app.db").WithTimeout(time.Microsecond), ""},
		{"huge timeout", "app.db", NewBuilder("app.db").WithTimeout(time.Duration(maxTimeoutMs+1) * time.Millisecond), "cannot be greater"},
		{"readonly file", "app.db", NewBuilder("app.db").WithReadonly(true), ""},
		{"readonly memory", MemoryPath, NewBuilder(MemoryPath).WithReadonly(true), "cannot be readonly"},
		{"readonly anonymous", "", NewBuilder("").WithReadonly(true), "cannot be readonly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := optionsFrom(tt.builder).validate(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDataSourceName(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		builder   Builder
		wantPath  string
		wantQuery url.Values
	}{
		{
			name:      "memory",
			path:      MemoryPath,
			builder:   NewBuilder(MemoryPath),
			wantPath:  "file::memory:",
			wantQuery: url.Values{"_busy_timeout": {"5000"}},
		},
		{
			name:      "file",
			path:      "data/app.db",
			builder:   NewBuilder("data/app.db").WithTimeout(250 * time.Millisecond),
			wantPath:  "file:data/app.db",
			wantQuery: url.Values{"_busy_timeout": {"250"}},
		},
		{
			name:      "readonly",
			path:      "app.db",
			builder:   NewBuilder("app.db").WithReadonly(true).WithFileMustExist(true),
			wantPath:  "file:app.db",
			wantQuery: url.Values{"_busy_timeout": {"5000"}, "mode": {"ro"}},
		},
		{
			name:      "must exist",
			path:      "app.db",
			builder:   NewBuilder("app.db").WithFileMustExist(true),
			wantPath:  "file:app.db",
			wantQuery: url.Values{"_busy_timeout": {"5000"}, "mode": {"rw"}},
		},
		{
			name:      "escaped",
			path:      "/tmp/my db?.db",
			builder:   NewBuilder("/tmp/my db?.db"),
			wantPath:  "file:/tmp/my%20db%3F.db",
			wantQuery: url.Values{"_busy_timeout": {"5000"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := dataSourceName(tt.path, optionsFrom(tt.builder))
			path, rawQuery, found := strings.Cut(dsn, "?")
			require.True(t, found)
			assert.Equal(t, tt.wantPath, path)

			query, err := url.ParseQuery(rawQuery)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
		})
	}
}
