// Package pkg provides the core libraries for the homedeck dashboard.
//
// # Overview
//
// Homedeck lays out status widgets for self-hosted services on per-home
// grids. The pkg directory is organized into four areas:
//
//  1. [grid] - Layout engine (sizes, packing strategies, mutations, defaults)
//  2. [service] - Service descriptors, metric identifiers, stats payloads
//  3. [store] - Layout persistence backends (memory, file, redis, mongo)
//  4. [errors] - Structured error codes shared across the boundaries
//
// # Architecture
//
// The typical data flow through homedeck:
//
//	Configured services
//	         ↓
//	    [grid] defaults (generate widgets per service kind)
//	         ↓
//	    [grid] packers (sequential, flexible, smart)
//	         ↓
//	    [store] backend (one layout per home)
//	         ↓
//	    HTTP API / terminal rendering
//
// The grid package is pure: every operation takes a layout and returns a new
// one, so callers decide when to persist. Stores and the HTTP server live at
// the boundary and own all error handling.
package pkg
