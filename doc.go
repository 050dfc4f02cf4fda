// Package fixjson parses a restricted JSON dialect directly into
// caller-owned, fixed-extent Go values: no destination is ever allocated
// by a parse call, no document drives unbounded recursion or unbounded
// storage growth, and the supported grammar is deliberately narrower than
// full JSON (no null, no heterogeneous arrays, no runtime schema
// discovery).
//
// A caller first builds an ObjectSchema or ArraySchema describing where
// each attribute or element should land — these are ordinary Go values,
// built once at startup. ParseObject and ParseArray then walk an input
// document against that schema byte by byte, writing straight into the
// destinations it names; the parse calls themselves still make small
// allocations for the attribute names and value tokens they scan.
//
// This generalizes a small, widely embedded C JSON library originally
// built for telemetry and status-message decoding in resource-constrained
// programs, where avoiding per-message heap churn matters more than
// accepting arbitrary JSON.
package fixjson
