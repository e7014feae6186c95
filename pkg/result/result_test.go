package result

import (
	"errors"
	"testing"
)

func TestSuccess_Predicates(t *testing.T) {
	t.Parallel()
	r := Success[int, error](5)

	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Result() != 5 {
		t.Fatalf("expected 5, got: %v", r.Result())
	}
	if r.Err() != nil {
		t.Fatalf("expected zero error on success, got: %v", r.Err())
	}
}

func TestFail_Predicates(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)

	if r.IsSuccess() || !r.IsFailure() {
		t.Fatalf("expected failure, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Err() != err {
		t.Fatalf("expected 'boom', got: %v", r.Err())
	}
	if r.Result() != 0 {
		t.Fatalf("expected zero value on failure, got: %v", r.Result())
	}
}

func TestGenericFailurePayload(t *testing.T) {
	t.Parallel()
	// failure payload is not constrained to error
	r := Fail[int]("not a number")

	if !r.IsFailure() || r.Err() != "not a number" {
		t.Fatalf("expected string failure, got: failure=%v, err=%v", r.IsFailure(), r.Err())
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	if v, ok := Success[int, error](7).Get(); !ok || v != 7 {
		t.Fatalf("expected (7, true), got: (%v, %v)", v, ok)
	}
	if v, ok := Fail[int](errors.New("x")).Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got: (%v, %v)", v, ok)
	}
}

func TestGetErr(t *testing.T) {
	t.Parallel()
	err := errors.New("x")

	if e, ok := Fail[int](err).GetErr(); !ok || e != err {
		t.Fatalf("expected (x, true), got: (%v, %v)", e, ok)
	}
	if e, ok := Success[int, error](1).GetErr(); ok || e != nil {
		t.Fatalf("expected (nil, false), got: (%v, %v)", e, ok)
	}
}

func TestUnwrap_Success(t *testing.T) {
	t.Parallel()

	if v := Success[int, error](9).Unwrap(); v != 9 {
		t.Fatalf("expected 9, got: %v", v)
	}
}

func TestUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("expected panic on unwrap of failure")
		}
		fe, ok := p.(FailureError[error])
		if !ok || fe.Err != err {
			t.Fatalf("expected FailureError carrying 'boom', got: %v", p)
		}
	}()

	Fail[int](err).Unwrap()
}

func TestUnwrapErr_Failure(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	if e := Fail[int](err).UnwrapErr(); e != err {
		t.Fatalf("expected 'boom', got: %v", e)
	}
}

func TestUnwrapErr_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("expected panic on unwrapErr of success")
		}
		se, ok := p.(SuccessError[int])
		if !ok || se.Value != 3 {
			t.Fatalf("expected SuccessError carrying 3, got: %v", p)
		}
	}()

	Success[int, error](3).UnwrapErr()
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	if v := Success[int, error](1).UnwrapOr(99); v != 1 {
		t.Fatalf("expected 1, got: %v", v)
	}
	if v := Fail[int](errors.New("x")).UnwrapOr(99); v != 99 {
		t.Fatalf("expected default 99, got: %v", v)
	}
}

func TestUnwrapOrElse(t *testing.T) {
	t.Parallel()

	called := false
	v := Success[int, error](1).UnwrapOrElse(func(error) int {
		called = true
		return 99
	})
	if v != 1 || called {
		t.Fatalf("expected 1 without invoking the default, got: v=%v, called=%v", v, called)
	}

	v = Fail[int](errors.New("x")).UnwrapOrElse(func(err error) int {
		if err.Error() != "x" {
			t.Fatalf("expected 'x', got: %v", err)
		}
		return 42
	})
	if v != 42 {
		t.Fatalf("expected lazy default 42, got: %v", v)
	}
}

func TestExpect(t *testing.T) {
	t.Parallel()

	if v := Success[int, error](2).Expect("should hold"); v != 2 {
		t.Fatalf("expected 2, got: %v", v)
	}

	defer func() {
		p := recover()
		fe, ok := p.(FailureError[error])
		if !ok || fe.Message != "loading config" {
			t.Fatalf("expected annotated FailureError, got: %v", p)
		}
		if fe.Error() != "loading config: boom" {
			t.Fatalf("unexpected panic text: %v", fe.Error())
		}
	}()

	Fail[int](errors.New("boom")).Expect("loading config")
}

func TestOr(t *testing.T) {
	t.Parallel()
	alt := Success[int, error](8)

	if r := Success[int, error](1).Or(alt); r.Result() != 1 {
		t.Fatalf("expected self on success, got: %v", r.Result())
	}
	if r := Fail[int](errors.New("x")).Or(alt); !r.IsSuccess() || r.Result() != 8 {
		t.Fatalf("expected alternative on failure, got: success=%v, val=%v", r.IsSuccess(), r.Result())
	}
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	called := false
	r := Success[int, error](1).OrElse(func(error) Result[int, error] {
		called = true
		return Success[int, error](0)
	})
	if r.Result() != 1 || called {
		t.Fatalf("expected self without invoking recovery, got: val=%v, called=%v", r.Result(), called)
	}

	r = Fail[int](errors.New("x")).OrElse(func(err error) Result[int, error] {
		return Success[int, error](len(err.Error()))
	})
	if !r.IsSuccess() || r.Result() != 1 {
		t.Fatalf("expected recovered success 1, got: success=%v, val=%v", r.IsSuccess(), r.Result())
	}
}

func TestFailFrom_PreservesIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	from := Fail[int](err)

	to := FailFrom[int, string](from)
	if !to.IsFailure() || to.Err() != err {
		t.Fatalf("expected failure 'boom', got: failure=%v, err=%v", to.IsFailure(), to.Err())
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("expected identity to carry over: id=%v/%v", to.Id(), from.Id())
	}
}

func TestFailFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on FailFrom of success")
		}
	}()

	FailFrom[int, string](Success[int, error](1))
}
