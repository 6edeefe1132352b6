package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger_ConcurrentUseBeforeInit(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Info("listing page loaded", "worker", i)
			WithRequest("req-1", "/").Debugw("rendered")
		}()
	}
	wg.Wait()

	assert.Same(t, GetLogger(), GetLogger())
}

func TestInit_ReplacesNopLogger(t *testing.T) {
	before := GetLogger()
	require.NoError(t, Init("test"))
	t.Cleanup(func() { globalLogger.Store(nil) })

	assert.NotSame(t, before, GetLogger())
	assert.Same(t, GetLogger(), GetLogger())
}
