// Package metrics instruments solver runs with Prometheus collectors and,
// for batch mode, exposes them on an optional rate-limited HTTP listener.
//
// Recorded series:
//   - mortar_runs_total{outcome}          run count by success/failure
//   - mortar_candidate_potions            generated candidates per run
//   - mortar_universe_facts               facts to cover per run
//   - mortar_cover_potions                chosen cover size
//   - mortar_solve_duration_seconds      greedy solve wall time
package metrics
