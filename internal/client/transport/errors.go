package transport

import "errors"

// ErrTransport marks any network, HTTP-status, or decode failure at the
// transport boundary. Callers match it with errors.Is and treat it as a
// sentinel instead of inspecting exception details.
var ErrTransport = errors.New("transport failure")
