package main

import (
	"fmt"

	"github.com/oukeidos/withseekbar/internal/logger"
)

// withPanicGuard runs fn and turns a panic into an error log plus an optional
// onPanic callback.
func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}
