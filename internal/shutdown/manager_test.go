package shutdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quickcalc/internal/logger"
)

type recorder struct {
	name  string
	order *[]string
}

func (r *recorder) Shutdown() {
	*r.order = append(*r.order, r.name)
}

// TestManager_ReverseOrder verifies teardown runs opposite to
// registration and only once.
func TestManager_ReverseOrder(t *testing.T) {
	m := NewManager(logger.Nop{})

	var order []string
	m.Register("first", &recorder{name: "first", order: &order})
	m.Register("second", &recorder{name: "second", order: &order})

	m.Shutdown()
	m.Shutdown()

	require.Equal(t, []string{"second", "first"}, order)

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

// TestManager_ContextCancelled verifies the shared context ends with
// shutdown.
func TestManager_ContextCancelled(t *testing.T) {
	m := NewManager(logger.Nop{})

	require.NoError(t, m.Context().Err())
	m.Shutdown()
	require.Error(t, m.Context().Err())
}
