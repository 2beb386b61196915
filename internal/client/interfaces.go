// SPDX-License-Identifier: Apache-2.0

package client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

var _ Client = (*App)(nil)
