// Package mocks provides hand-written test doubles shared across packages.
//
// Store mocks are generated with mockgen and live in internal/store/mocks.
// The doubles here are for interfaces whose tests want recorded calls or a
// canned result rather than gomock expectations.
package mocks
