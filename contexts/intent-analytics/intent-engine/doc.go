// Package intentengine infers purchase-intent states from behavioral event
// streams inside the intent-analytics context.
//
// The module owns the canonical event/session data model, the five signal
// extractors, the weighted heuristic rule engine, the trajectory state
// machine with transition gating, and post-hoc confidence/attribution
// refinement. Business rules stay in domain/application layers; storage and
// HTTP concerns sit behind ports and adapters.
package intentengine
