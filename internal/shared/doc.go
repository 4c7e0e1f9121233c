// Package shared holds cross-cutting helpers that do not belong to any
// single domain package. Currently that is only testutil, the buffered
// slog handler used by package tests to assert on log output.
package shared
