// Package cel implements the gridcel formula engine: a small interpreter
// for spreadsheet-style grids of delimited text. Each cell holds either a
// literal (number, boolean, or string) or a formula introduced by a marker
// character (`=` by default) whose body is a single built-in function call:
//   - Calls use semicolon-separated arguments: `sum(B1;mul(B2;0.8))`.
//   - Arguments are nested calls, cell references (`A1`, `BC23`), numbers,
//     double-quoted strings, the booleans `true`/`false`, or arrays in
//     square brackets (`[1;2;3]`).
//   - The built-in set is fixed and case-sensitive: print, sum, sub, mul,
//     and div.
//
// Evaluation is on demand: requesting a cell parses its formula, recursively
// evaluates every referenced cell (forward references included), memoizes
// the result, and reports reference cycles, out-of-bounds references, and
// arity or type errors as typed evaluation failures scoped to the failing
// cell and its dependents.
package cel
