// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements the discrete distributions used to overlay
// theoretical curves on histograms.
package stats // import "github.com/aclements/statsplus/stats"
