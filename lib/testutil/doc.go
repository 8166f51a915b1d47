// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireReceive] and [RequireClosed] bound a wait on a channel with
// a real-clock timeout, so a test exercising a blocking clock call
// fails instead of hanging when the call never returns.
//
// [WriteFile] writes a fixture into the test's temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no dependencies on other packages in this module.
package testutil
