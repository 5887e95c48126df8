// Package kinetics builds the numeric series behind the kinetics plots.
//
// Two generators are provided, both pure functions of their parameters:
//
//   - [Eyring]: ln(k/T) against 1/T for a given ΔH‡ and ΔS‡
//   - [SaltEffect]: Debye–Hückel limiting law, log(k/k₀) against √I
//
// Every call returns freshly allocated curves; callers may keep or
// discard them without affecting later calls.
package kinetics
