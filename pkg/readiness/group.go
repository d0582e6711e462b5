// Copyright 2026 PixelPouch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package readiness

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AwaitAll waits until every marker in paths exists. All paths share the
// settings in params; params.Path is ignored. The first failure cancels the
// remaining waits and is returned.
func AwaitAll(ctx context.Context, paths []string, params Params) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: no markers to wait for", ErrInvalidConfig)
	}

	waiters := make([]*Waiter, 0, len(paths))
	for _, path := range paths {
		p := params
		p.Path = path
		w, err := NewWaiter(p)
		if err != nil {
			return err
		}
		waiters = append(waiters, w)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, w := range waiters {
		group.Go(func() error {
			return w.Wait(groupCtx)
		})
	}
	return group.Wait()
}
