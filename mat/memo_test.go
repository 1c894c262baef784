// SPDX-License-Identifier: MIT
package mat_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvlsolve/mat"
	"github.com/stretchr/testify/require"
)

func TestMemo_ProducesExactlyOnce(t *testing.T) {
	var calls int32
	m := mat.NewMemo(func() int {
		atomic.AddInt32(&calls, 1)
		return 42
	})

	const goroutines = 16
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			require.Equal(t, 42, m.Get())
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestMemo_SharedAcrossCallers(t *testing.T) {
	m := mat.NewMemo(func() []float64 { return []float64{1, 2} })
	first := m.Get()
	second := m.Get()
	require.Same(t, &first[0], &second[0])
}

func TestTransposeCache_ConcurrentGetSameInstance(t *testing.T) {
	d, err := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	const goroutines = 8
	results := make([]mat.Matrix, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(slot int) {
			defer wg.Done()
			results[slot] = d.Transpose()
		}(g)
	}
	wg.Wait()
	for g := 1; g < goroutines; g++ {
		require.Same(t, results[0], results[g])
	}
}
