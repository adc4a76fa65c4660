package dispatch

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func newTestStub(variants ...Variant[kernelFn]) *Stub[kernelFn] {
	s := NewStub[kernelFn]("test.op")
	for _, v := range variants {
		s.Register(v)
	}
	return s
}

func TestStubBaselineOnlyAlwaysDispatchesGeneric(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
	}{
		{name: "no SIMD", features: cpu.Features{}},
		{name: "AVX2 detected", features: cpu.Features{HasSSE2: true, HasAVX2: true}},
		{name: "NEON detected", features: cpu.Features{HasNEON: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStub(Variant[kernelFn]{
				Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0,
				Kernel: namedKernel("generic"),
			})
			s.SetDetectFeatures(func() cpu.Features { return tt.features })

			if got := s.Kernel()(); got != "generic" {
				t.Errorf("expected generic, got %q", got)
			}
		})
	}
}

func TestStubFollowsDetectedTier(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "higher tier detected - select it",
			features: cpu.Features{HasSSE2: true, HasAVX2: true},
			want:     "avx2",
		},
		{
			name:     "baseline detected - select baseline",
			features: cpu.Features{},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStub(
				Variant[kernelFn]{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Kernel: namedKernel("generic")},
				Variant[kernelFn]{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Kernel: namedKernel("avx2")},
			)
			s.SetDetectFeatures(func() cpu.Features { return tt.features })

			if got := s.Kernel()(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}

			name, ok := s.ResolvedName()
			if !ok || name != tt.want {
				t.Errorf("ResolvedName = %q, %v; want %q, true", name, ok, tt.want)
			}
		})
	}
}

func TestStubEmptyRegistryPanics(t *testing.T) {
	s := NewStub[kernelFn]("test.empty")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on first call with empty registry")
		}
	}()

	s.Kernel()
}

func TestStubDetectionIsBounded(t *testing.T) {
	var detectCalls atomic.Int64

	s := newTestStub(Variant[kernelFn]{
		Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0,
		Kernel: namedKernel("generic"),
	})
	s.SetDetectFeatures(func() cpu.Features {
		detectCalls.Add(1)
		return cpu.Features{}
	})

	// Warm up: resolve once.
	s.Kernel()

	after := detectCalls.Load()
	if after != 1 {
		t.Fatalf("expected exactly 1 detection on serial first use, got %d", after)
	}

	// Steady state: no further detection regardless of call volume.
	for i := 0; i < 10000; i++ {
		s.Kernel()
	}

	if got := detectCalls.Load(); got != after {
		t.Errorf("detection re-ran in steady state: %d calls after warmup, %d now", after, got)
	}
}

func TestStubConcurrentFirstUseResolvesOnce(t *testing.T) {
	const goroutines = 32
	const callsPerGoroutine = 200

	var detectCalls atomic.Int64

	s := newTestStub(
		Variant[kernelFn]{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Kernel: namedKernel("generic")},
		Variant[kernelFn]{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Kernel: namedKernel("avx2")},
	)
	s.SetDetectFeatures(func() cpu.Features {
		detectCalls.Add(1)
		return cpu.Features{HasSSE2: true, HasAVX2: true}
	})

	results := make([][]string, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer done.Done()
			start.Wait()
			out := make([]string, 0, callsPerGoroutine)
			for i := 0; i < callsPerGoroutine; i++ {
				out = append(out, s.Kernel()())
			}
			results[g] = out
		}(g)
	}

	start.Done()
	done.Wait()

	// Every call from every goroutine must observe the same resolution.
	for g, out := range results {
		for i, got := range out {
			if got != "avx2" {
				t.Fatalf("goroutine %d call %d dispatched to %q, want avx2", g, i, got)
			}
		}
	}

	// Racing first calls may each probe, but detection is bounded by the
	// number of goroutines, never by call volume.
	if got := detectCalls.Load(); got < 1 || got > goroutines {
		t.Errorf("detect called %d times, want between 1 and %d", got, goroutines)
	}
}

func TestStubResetReresolves(t *testing.T) {
	s := newTestStub(
		Variant[kernelFn]{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0, Kernel: namedKernel("generic")},
		Variant[kernelFn]{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, Kernel: namedKernel("avx2")},
	)

	s.SetDetectFeatures(func() cpu.Features { return cpu.Features{HasAVX2: true} })
	if got := s.Kernel()(); got != "avx2" {
		t.Fatalf("expected avx2 before reset, got %q", got)
	}

	s.Reset()
	if _, ok := s.ResolvedName(); ok {
		t.Fatal("expected unresolved stub after Reset")
	}

	s.SetDetectFeatures(func() cpu.Features { return cpu.Features{} })
	if got := s.Kernel()(); got != "generic" {
		t.Fatalf("expected generic after reset with baseline features, got %q", got)
	}
}

func TestStubName(t *testing.T) {
	s := NewStub[kernelFn]("cat.Serial")
	if s.Name() != "cat.Serial" {
		t.Errorf("Name = %q, want %q", s.Name(), "cat.Serial")
	}
	if _, ok := s.ResolvedName(); ok {
		t.Error("new stub must start unresolved")
	}
}

func BenchmarkStubCachedCall(b *testing.B) {
	s := newTestStub(Variant[kernelFn]{
		Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0,
		Kernel: namedKernel("generic"),
	})
	s.SetDetectFeatures(func() cpu.Features { return cpu.Features{} })

	// Warm up - resolve before measuring the steady state.
	s.Kernel()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.Kernel()
	}
}
