package testutil

import (
	"bufio"
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/vk/gopatterns/internal/ctxlog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Record is one decoded slog JSON line.
type Record map[string]any

// Msg returns the record's message.
func (r Record) Msg() string {
	s, _ := r[slog.MessageKey].(string)
	return s
}

// Attr returns a string attribute, or "" when absent.
func (r Record) Attr(key string) string {
	s, _ := r[key].(string)
	return s
}

// NewTestContext returns a context carrying a debug-level JSON logger that
// writes into the returned buffer. Set GOPATTERNS_TEST_LOGS=true to dump the
// captured output after each test.
func NewTestContext(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if os.Getenv("GOPATTERNS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
		}
	})

	return ctxlog.WithLogger(context.Background(), logger), buf
}

// Records decodes every JSON log line in the buffer.
func Records(t *testing.T, buf *SafeBuffer) []Record {
	t.Helper()

	var records []Record
	sc := bufio.NewScanner(strings.NewReader(buf.String()))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec Record
		require.NoError(t, json.Unmarshal([]byte(line), &rec), "log line is not JSON: %s", line)
		records = append(records, rec)
	}
	require.NoError(t, sc.Err())
	return records
}

// InfoMessages returns the messages of all INFO records, in order.
func InfoMessages(t *testing.T, buf *SafeBuffer) []string {
	t.Helper()

	var msgs []string
	for _, rec := range Records(t, buf) {
		if rec[slog.LevelKey] == slog.LevelInfo.String() {
			msgs = append(msgs, rec.Msg())
		}
	}
	return msgs
}
