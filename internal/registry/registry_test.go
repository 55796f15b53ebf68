package registry

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/gopatterns/internal/vehicle"
)

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("US", vehicle.NewUSFactory())

	f, err := r.Lookup("us")
	require.NoError(t, err)
	assert.Equal(t, vehicle.USSpec, f.Region())
}

func TestRegistry_UnknownRegion(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("eu", vehicle.NewEUFactory())

	_, err := r.Lookup("jp")
	require.ErrorIs(t, err, ErrUnknownRegion)
	assert.Contains(t, err.Error(), `"jp"`)
	assert.Contains(t, err.Error(), "known: eu")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("us", vehicle.NewUSFactory())

	assert.PanicsWithValue(t, "factory for region 'us' already registered", func() {
		r.Register("us", vehicle.NewUSFactory())
	})
}

func TestRegistry_KeysSorted(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register("us", vehicle.NewUSFactory())
	r.Register("eu", vehicle.NewEUFactory())

	assert.Equal(t, []string{"eu", "us"}, r.Keys())
}

// TestRegister_DoesNotLogGlobally guards against records that bypass the
// run's configured logger. It swaps the process default logger, so it does
// not run in parallel.
func TestRegister_DoesNotLogGlobally(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := New()
	r.Register("us", vehicle.NewUSFactory())

	assert.Empty(t, buf.String())
}
