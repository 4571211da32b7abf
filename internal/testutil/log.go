package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// LogEntry represents single [zap.Logger] entry without timestamp.
type LogEntry struct {
	Level   zapcore.Level
	Message string
	// Numbers are represented as [json.Number].
	Fields map[string]any
}

// LogBuffer is a memory buffer for [zap.Logger] entries.
type LogBuffer struct {
	t testing.TB
	b *zaptest.Buffer
}

// NewBufferedLogger returns logger writing JSON entries into memory so that
// tests can check what has been logged.
//
// Entries with severity less than minLevel are never written.
func NewBufferedLogger(t testing.TB, minLevel zapcore.Level) (*zap.Logger, *LogBuffer) {
	lb := &LogBuffer{t: t, b: new(zaptest.Buffer)}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = zapcore.OmitKey
	encCfg.CallerKey = zapcore.OmitKey
	encCfg.StacktraceKey = zapcore.OmitKey

	return zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(lb.b),
		minLevel,
	)), lb
}

// AssertEmpty asserts that log is empty.
func (x *LogBuffer) AssertEmpty() {
	x.AssertEqual(nil)
}

// AssertSingle asserts that log has given entry only.
func (x *LogBuffer) AssertSingle(e LogEntry) {
	x.AssertEqual([]LogEntry{e})
}

// AssertEqual asserts that log consists of given ordered entries.
func (x *LogBuffer) AssertEqual(es []LogEntry) {
	got := x.entries()
	require.Len(x.t, got, len(es))
	for i := range es {
		require.Equal(x.t, es[i], got[i], i)
	}
}

// AssertContains asserts that log contains given entry.
func (x *LogBuffer) AssertContains(e LogEntry) {
	require.Contains(x.t, x.entries(), e)
}

func (x *LogBuffer) entries() []LogEntry {
	lines := x.b.Lines()
	res := make([]LogEntry, len(lines))

	for i := range lines {
		dec := json.NewDecoder(strings.NewReader(lines[i]))
		dec.UseNumber()

		var m map[string]any
		require.NoError(x.t, dec.Decode(&m), i)

		lvl, ok := m["level"].(string)
		require.True(x.t, ok, i)
		require.NoError(x.t, res[i].Level.UnmarshalText([]byte(lvl)), i)

		res[i].Message, ok = m["msg"].(string)
		require.True(x.t, ok, i)

		delete(m, "level")
		delete(m, "msg")
		res[i].Fields = m
	}

	return res
}
