// Copyright (c) 2026 Resin Forge Authors.
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package support

import "errors"

// ErrSamplingConvergence is the non-fatal sentinel of spec.md 7's
// SamplingConvergenceWarning: alignment did not converge within
// config.CountIteration sweeps. SampleIsland/SamplePeninsula still
// return the partially-converged point set alongside this error;
// check with errors.Is.
var ErrSamplingConvergence = errors.New("support: alignment did not converge within the iteration budget")
