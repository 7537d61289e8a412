package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := WithRequestID(context.Background(), "req-1")

	func() (err error) {
		defer Time(ctx, logger, "holes.distances")(&err)
		return nil
	}()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "req-1", entry["req_id"])
	assert.Equal(t, "holes.distances", entry["op"])
	assert.Contains(t, entry, "dur_ms")
}

func TestTimeLogsError(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	_ = func() (err error) {
		defer Time(context.Background(), logger, "config.load")(&err)
		return errors.New("boom")
	}()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "", entry["req_id"])
}

func TestRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
}
