package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Calls(t *testing.T) {
	r := &Recorder{}
	var p Provider = r

	_ = p.Count("a", 1, []string{"x:1"})
	_ = p.Gauge("b", 2, nil)
	_ = p.Histogram("a", 3, nil)

	calls := r.Calls("a")
	assert.Len(t, calls, 2)
	assert.Equal(t, "count", calls[0].Type)
	assert.Equal(t, "histogram", calls[1].Type)
	assert.Empty(t, r.Calls("c"))
}

func TestNoop(t *testing.T) {
	var p Provider = Noop{}
	assert.NoError(t, p.Count("a", 1, nil))
	assert.NoError(t, p.Gauge("a", 1, nil))
	assert.NoError(t, p.Histogram("a", 1, nil))
}
