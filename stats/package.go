// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements the Normal (Gaussian) distribution on top of
// pluggable error-function approximations.
package stats // import "github.com/normstats/go-gaussian/stats"

import "math"

var nan = math.NaN()
