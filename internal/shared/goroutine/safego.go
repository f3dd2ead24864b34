// Package goroutine launches background work that must never take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/brandvault/brandvault/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine and logs a recovered panic with its stack.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
