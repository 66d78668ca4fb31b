// Package http implements the REST transport of the fundraiser API.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: request tracing, access logging, the access-control gate and
// the JSON envelope every response is written in.
package http
