// Package controller contains HTTP middlewares and helper handlers used by the
// mock profile server.
//
// Provided middlewares:
//   - WithCORS: Adds read-only CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context,
//     echoes the ID in the response and logs access info.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
