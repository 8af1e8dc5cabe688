// SPDX-License-Identifier: Apache-2.0

// Package client implements the consumer-side core of SavedIt: the
// membership resolver, the reminder tracker, the view synchronizers, and
// the quick-save intake.
//
// Every component talks to the backend through [adapter.Backend] and
// degrades instead of failing: network or permission errors surface as
// non-fatal warnings and empty projections, never as a blank page.
package client
