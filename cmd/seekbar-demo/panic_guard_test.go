package main

import "testing"

func TestWithPanicGuardRecovers(t *testing.T) {
	called := false
	withPanicGuard("test.guard", func(any) {
		called = true
	}, func() {
		panic("boom")
	})
	if !called {
		t.Fatalf("panic callback was not called")
	}
}

func TestWithPanicGuardNoPanic(t *testing.T) {
	called := false
	ran := false
	withPanicGuard("test.guard.no_panic", func(any) {
		called = true
	}, func() { ran = true })
	if called || !ran {
		t.Fatalf("called=%v ran=%v, want false/true", called, ran)
	}
}
