// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and the background refresh
// job into a single process lifecycle.
package client
