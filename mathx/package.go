// Copyright 2024 The Gaussian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions not provided by the standard
// math package.
package mathx // import "github.com/normstats/go-gaussian/mathx"
