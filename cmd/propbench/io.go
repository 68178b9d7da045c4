// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// readFileWithRetry reads path, retrying a handful of times with
// exponential backoff to absorb transient filesystem errors (an NFS
// mount blinking, a container volume still settling). Permission and
// not-exist errors are not retryable.
func readFileWithRetry(ctx context.Context, path string) ([]byte, error) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(20*time.Millisecond))
	attempt := 0
	var data []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		b, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
				return err
			}
			slog.Debug("reading input file failed, will retry", "path", path, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, oops.Code("INPUT_READ_FAILED").With("path", path).Wrapf(err, "read input file")
	}
	return data, nil
}
