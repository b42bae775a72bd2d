package gpu

import (
	"log/slog"

	"github.com/gogpu/tri"
)

// slogger returns the library logger. All logging in internal/gpu goes
// through this function so tri.SetLogger covers this package too.
func slogger() *slog.Logger { return tri.Logger() }
