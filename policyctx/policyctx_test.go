package policyctx_test

import (
	"context"
	"testing"

	"github.com/warp/valuecalc/policyctx"
)

func TestSlotScopingDoesNotLeakToParent(t *testing.T) {
	ctx := context.Background()

	if got := policyctx.NullBehaviorFrom(ctx); got != policyctx.DefaultNulls {
		t.Fatalf("expected DefaultNulls on bare context, got %+v", got)
	}

	child := policyctx.UseNullBehavior(ctx, policyctx.StrictRaise)
	if got := policyctx.NullBehaviorFrom(child); got != policyctx.StrictRaise {
		t.Fatalf("expected StrictRaise on child, got %+v", got)
	}
	if got := policyctx.NullBehaviorFrom(ctx); got != policyctx.DefaultNulls {
		t.Fatalf("parent context was mutated by child scope: got %+v", got)
	}
}

func TestWithNullBehaviorRestoresOnReturn(t *testing.T) {
	ctx := context.Background()
	var observed policyctx.NullBehavior

	err := policyctx.WithNullBehavior(ctx, policyctx.SumZero, func(scoped context.Context) error {
		observed = policyctx.NullBehaviorFrom(scoped)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if observed != policyctx.SumZero {
		t.Fatalf("expected SumZero inside scope, got %+v", observed)
	}
	if got := policyctx.NullBehaviorFrom(ctx); got != policyctx.DefaultNulls {
		t.Fatalf("expected DefaultNulls outside scope, got %+v", got)
	}
}

func TestWithNullBehaviorPropagatesError(t *testing.T) {
	ctx := context.Background()
	boom := context.Canceled

	err := policyctx.WithNullBehavior(ctx, policyctx.StrictRaise, func(context.Context) error {
		return boom
	})
	if err != boom {
		t.Fatalf("expected error to propagate unchanged, got %v", err)
	}
	// Even on an error exit, the parent context must be unaffected.
	if got := policyctx.NullBehaviorFrom(ctx); got != policyctx.DefaultNulls {
		t.Fatalf("parent context leaked scope state after error exit: %+v", got)
	}
}

func TestResolutionDefault(t *testing.T) {
	ctx := context.Background()
	if got := policyctx.ResolutionFrom(ctx); got != policyctx.ResolutionLeftOperand {
		t.Fatalf("expected ResolutionLeftOperand default, got %v", got)
	}
}

func TestConversionPolicyDefault(t *testing.T) {
	ctx := context.Background()
	got := policyctx.ConversionPolicyFrom(ctx)
	if got != policyctx.DefaultConversionPolicy {
		t.Fatalf("expected DefaultConversionPolicy, got %+v", got)
	}
}
