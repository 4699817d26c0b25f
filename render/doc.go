// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render builds the Block Kit message for an estimation round.

The message has exactly two shapes, selected by round visibility:

  - voting: per-participant presence markers (voted / abstained, never the
    value), the estimation scale buttons, plus Abstain and Reveal
  - revealed: every participant's value, a summary grouping identical
    values with abstentions listed last, and no buttons

render.Round is side-effect free and byte-deterministic for a given round,
so the publisher can always re-render and replace the whole message
instead of patching it.
*/
package render
