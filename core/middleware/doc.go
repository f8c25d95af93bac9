// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every storage route.
//   - rayid: a unique Request ID (RayID) per incoming request, stored in the context
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally by the start command.
package middleware
