// Package pricing implements the Taza Index fair-price evaluator.
//
// The evaluator is a pure function mapping (offered price, category market
// average) onto a banded fairness classification:
//   - DeltaPercent: signed percentage deviation from the market average
//   - Band: too_low / moderately_low / fair / premium / vip
//   - Index: price-to-average ratio scaled to 100, display-capped at 150
//   - RecommendedPrice: the average nudged toward the fair band when the
//     offer sits below it
//   - ProtectionEnabled: premium dispute protection above index 130
//
// Every screen that needs a fairness signal calls Evaluate with the same
// thresholds, so band cutoffs cannot drift between call sites. The package
// has no dependencies on persistence or transport; orders store the returned
// Evaluation as an immutable snapshot taken at creation time.
package pricing
