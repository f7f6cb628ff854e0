// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spatial implements spatial pooling: mapping an input SDR onto a
population of competing minicolumns through learned, threshold-gated
connections, producing a new sparse code.

Initialization (NewPooler, or the phase functions directly):

  - BuildPotential samples each minicolumn's potential pool, globally or
    from a hypercube around the minicolumn's proportional input position.
  - InitPerms gives exactly Perm.NConnect members of each pool a
    permanence at or above Perm.Thr, and the rest a permanence below it.
  - RaiseStimulus lifts minicolumns that have fewer than Perm.StimThr
    connections.

Each Cycle then computes Overlap scores from the active inputs, optionally
multiplies them by boost factors (BoostedOverlap), selects the active
minicolumns by InhibGlobal or InhibLocal, and when learning, adapts the
permanences of the winners (Learn) and integrates the duty cycles
(UpdateDuty) and boost factors (UpdateBoost).

All randomness is drawn from a caller-supplied kmath.Rand, so a fixed seed
reproduces every step exactly. A Pooler is not safe for concurrent use.
*/
package spatial
