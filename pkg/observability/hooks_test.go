package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "fig3")
	p.OnBuildComplete(ctx, "fig3", time.Second, nil)
	p.OnRenderStart(ctx, "fig3", []string{"png"})
	p.OnRenderComplete(ctx, "fig3", []string{"png"}, time.Second, nil)

	k := NoopPackingHooks{}
	k.OnPackComplete(ctx, "uniform", 19, 2000, time.Millisecond)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Packing().(NoopPackingHooks); !ok {
		t.Error("Packing() should return NoopPackingHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customPacking := &testPackingHooks{}
	SetPackingHooks(customPacking)
	if Packing() != customPacking {
		t.Error("SetPackingHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Packing().(NoopPackingHooks); !ok {
		t.Error("Reset() should restore NoopPackingHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	packing := &testPackingHooks{}
	SetPackingHooks(packing)
	SetPackingHooks(nil)
	if Packing() != packing {
		t.Error("SetPackingHooks(nil) should be ignored")
	}

	Reset()
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testPackingHooks struct{ NoopPackingHooks }
type testCacheHooks struct{ NoopCacheHooks }
