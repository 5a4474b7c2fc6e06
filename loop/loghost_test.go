package loop

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogHostStopsAfterFrameBudget(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(&buf)
	host := NewLogHost(log, 6, 3)
	d := NewDriver(newSimulation(t), log, WithClock(frameClock(time.Millisecond)), WithStatsEvery(0))

	require.NoError(t, d.Run(context.Background(), host))

	assert.Equal(t, uint64(6), host.Rendered())
	assert.False(t, host.Running())
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"msg":"frame"`))
	assert.Equal(t, 18, strings.Count(out, `"msg":"body"`))
	assert.Contains(t, out, `"name":"jupiter"`)
}

func TestLogHostWithoutBudgetRunsUntilCancelled(t *testing.T) {
	var buf bytes.Buffer
	host := NewLogHost(newTestLogger(&buf), 0, 0)

	for i := 0; i < 1000; i++ {
		require.NoError(t, host.Render(Frame{Index: uint64(i + 1)}))
	}
	assert.True(t, host.Running())
	assert.Empty(t, buf.String())
}
