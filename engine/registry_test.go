package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCreateReportsNewlyInserted(t *testing.T) {
	r := NewRegistry()

	created := r.Create("cet_eos", DefaultFixed)
	assert.True(t, created, "first Create for a code should report created=true")

	created = r.Create("cet_eos", DefaultFixed)
	assert.False(t, created, "Create over an existing code should report created=false")
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Remove("missing"))

	r.Create("otc_eos", DefaultFixed)
	assert.True(t, r.Remove("otc_eos"))
	assert.Nil(t, r.Get("otc_eos"))
}

func TestRegistryListIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Create("pub_eos", DefaultFixed)
	r.Create("cet_eos", DefaultFixed)
	r.Create("iq_eos", DefaultFixed)

	assert.Equal(t, []string{"cet_eos", "iq_eos", "pub_eos"}, r.List())
}

func TestRegistryGetMissingReturnsNil(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nope"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			r.Create("stress", DefaultFixed)
			if h := r.Get("stress"); h != nil {
				h.Lock()
				_ = h.Book.IsMatching()
				h.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Contains(t, r.List(), "stress")
}
