package httpd

import (
	"github.com/frankli0324/go-httpd/internal"
	"github.com/frankli0324/go-httpd/utils/nettools"
)

var (
	New = internal.New

	WithAddr            = internal.WithAddr
	WithLogger          = internal.WithLogger
	WithMaxRequestSize  = internal.WithMaxRequestSize
	WithTimeouts        = internal.WithTimeouts
	WithHeadWait        = internal.WithHeadWait
	WithMaxConns        = internal.WithMaxConns
	WithSequential      = internal.WithSequential
	WithFraming         = internal.WithFraming
	WithConfinement     = internal.WithConfinement
	WithShutdownTimeout = internal.WithShutdownTimeout
	WithUserAgentParser = internal.WithUserAgentParser
	Listen              = nettools.Listen
)
