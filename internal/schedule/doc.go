// Package schedule is a small client for the MLB Stats API schedule endpoint.
//
// One call fetches a single team's season schedule with team and venue details
// hydrated inline. The client does not retry or paginate; callers decide what a failed
// team means for the run.
package schedule
