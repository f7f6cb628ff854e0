// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package htm is the overall repository for Sparse Distributed Representation
(SDR) statistics and spatial pooling, the core building block of
Hierarchical Temporal Memory, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* errs: the error kinds (domain, bounds, config) returned throughout,
to be tested with errors.Is.

* kmath: big-integer combinatorics, range fitting and normalization, and
sampling without replacement driven by an injectable random source.

* grid: N-dimensional grids with flat index <-> coordinate mapping,
proportional mapping between grids, and hypercube neighborhoods.

* sdr: the SDR Vector interface with its packed bit reference implementation,
plus union, overlap and matching.  sdr/props computes the combinatorial
statistics (match and union probabilities) used to choose capacity,
cardinality and thresholds.

* encoder: linear, cyclic and categorical encoders from raw values to SDRs.

* spatial: the spatial pooler -- potential pools, permanences, overlap,
global and local inhibition, learning, duty cycles and boosting.

* examples: spdemo is a runnable program that trains a pooler on an
encoded scalar sweep and reports its codes and statistics.
*/
package htm
