package future

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/lazy"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

func TestGoAndAwait(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := Go(func() outcome.Result[int] {
		return outcome.Success(11)
	})

	r := f.Await(ctx)
	assert.True(t, outcome.Equal(outcome.Success(11), r))

	// awaiting again yields the same completed result
	assert.True(t, outcome.Equal(r, f.Await(ctx)))
}

func TestResolvedOfErr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.True(t, outcome.Equal(outcome.Success(1), Of(1).Await(ctx)))
	assert.True(t, outcome.Equal(outcome.Fail[int]("e"), Err[int](outcome.Generic("e")).Await(ctx)))

	r := outcome.Success("done")
	assert.True(t, outcome.Equal(r, Resolved(r).Await(ctx)))
}

func TestNew_PromisePair(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f, resolve := New[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		resolve(outcome.Success("late"))
	}()

	assert.True(t, outcome.Equal(outcome.Success("late"), f.Await(ctx)))
}

func TestAwait_CancelledContext(t *testing.T) {
	t.Parallel()

	f, _ := New[int]() // never resolved

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := f.Await(ctx)
	require.True(t, r.IsFailure())
	assert.True(t, errors.Is(r.Err(), context.Canceled))
}

func TestCombinators_MatchSynchronousSemantics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inputs := []outcome.Result[int]{
		outcome.Success(6),
		outcome.Fail[int]("broken"),
	}

	for _, in := range inputs {
		lifted := Resolved(in)

		assert.True(t, outcome.Equal(
			solo.Map(in, strconv.Itoa),
			Map(ctx, lifted, strconv.Itoa).Await(ctx)))

		bindF := func(v int) outcome.Result[int] { return outcome.Success(v - 1) }
		assert.True(t, outcome.Equal(
			solo.Bind(in, bindF),
			Bind(ctx, lifted, bindF).Await(ctx)))

		assert.True(t, outcome.Equal(
			solo.OrElse(in, 9),
			OrElse(ctx, lifted, 9).Await(ctx)))

		recF := func(outcome.Error) int { return 0 }
		assert.True(t, outcome.Equal(
			solo.Recover(in, recF),
			Recover(ctx, lifted, recF).Await(ctx)))

		pred := func(v int) bool { return v == 6 }
		boom := outcome.Generic("six")
		assert.True(t, outcome.Equal(
			solo.FailWhen(in, pred, boom),
			FailWhen(ctx, lifted, pred, boom).Await(ctx)))
	}
}

func TestBindAwait_ChainsPendingFutures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := Go(func() outcome.Result[int] {
		return outcome.Success(1)
	})

	r := BindAwait(ctx, first, func(v int) outcome.Awaitable[int] {
		return Go(func() outcome.Result[int] {
			return outcome.Success(v + 1)
		})
	}).Await(ctx)

	assert.True(t, outcome.Equal(outcome.Success(2), r))
}

func TestTap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls atomic.Int32
	r := Tap(ctx, Err[int](outcome.Generic("no")), func(int) {
		calls.Add(1)
	}).Await(ctx)

	require.True(t, r.IsFailure())
	assert.Zero(t, calls.Load())

	var failed atomic.Int32
	TapErr[int](ctx, Err[int](outcome.Generic("no")), func(outcome.Error) {
		failed.Add(1)
	}).Await(ctx)
	assert.Equal(t, int32(1), failed.Load())
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, Of("12"), strconv.Atoi).Await(ctx)
	assert.True(t, outcome.Equal(outcome.Success(12), ok))

	bad := Try(ctx, Of("oops"), strconv.Atoi).Await(ctx)
	assert.True(t, bad.IsFailure())
}

func TestCatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Catch(ctx, func(ctx context.Context) (int, error) {
		return 5, nil
	}).Await(ctx)
	assert.True(t, outcome.Equal(outcome.Success(5), ok))

	bad := Catch(ctx, func(ctx context.Context) (int, error) {
		panic(errors.New("deep"))
	}).Await(ctx)
	require.True(t, bad.IsFailure())
	assert.Equal(t, "deep", bad.Err().Message())
}

func TestMatch_DeliversOnChannel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Match(ctx, Of(3),
		func(v int) string { return "ok:" + strconv.Itoa(v) },
		func(err outcome.Error) string { return "err" })

	assert.Equal(t, "ok:3", <-out)

	_, open := <-out
	assert.False(t, open)
}

func TestAll_CollectsInOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := All[int](ctx,
		Of(1),
		Go(func() outcome.Result[int] { return outcome.Success(2) }),
		lazy.Pure(3),
	).Await(ctx)

	require.True(t, r.IsSuccess())
	assert.Equal(t, []int{1, 2, 3}, r.Value())
}

func TestAll_FailFast(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var later atomic.Int32
	r := All[int](ctx,
		Of(1),
		Err[int](outcome.Generic("broken")),
		lazy.Tap(lazy.Pure(3), func(int) { later.Add(1) }),
	).Await(ctx)

	require.True(t, r.IsFailure())
	assert.Equal(t, outcome.Generic("broken"), r.Err())
	assert.Zero(t, later.Load()) // inputs after the failure are not resolved
}

func TestRace_FirstCompletedWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slow := Go(func() outcome.Result[int] {
		time.Sleep(200 * time.Millisecond)
		return outcome.Success(1)
	})

	r := Race[int](ctx, slow, Of(2)).Await(ctx)
	assert.True(t, outcome.Equal(outcome.Success(2), r))
}

func TestRace_NoInputs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Race[int](ctx).Await(ctx)
	assert.True(t, r.IsFailure())
}

func TestGoCtx(t *testing.T) {
	t.Parallel()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	r := GoCtx(ctx, func(ctx context.Context) outcome.Result[string] {
		return outcome.Success(ctx.Value(key{}).(string))
	}).Await(ctx)

	assert.True(t, outcome.Equal(outcome.Success("v"), r))
}
