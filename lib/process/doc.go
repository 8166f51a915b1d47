// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds the entrypoint helper ostime binaries use to
// report a fatal error from main() and exit with the right status.
package process
