package domain

import "time"

// RouteOptions tunes a routing request.
type RouteOptions struct {
	// Limit caps the number of matches returned. Zero means no cap.
	Limit int
}

// Match is one routed skill together with the evidence for its rank.
type Match struct {
	// Skill is the matched catalog entry.
	Skill Skill

	// MatchedKeywords lists the distinct trigger keywords found in the
	// query, in the skill's declaration order.
	MatchedKeywords []string

	// Score is the number of distinct keywords matched. Higher ranks first.
	Score int

	// Fallback is true when this is the root entry served because no
	// keyword matched.
	Fallback bool
}

// RouteOutcome classifies how a query was answered.
type RouteOutcome string

const (
	// OutcomeResolved means at least one trigger keyword matched.
	OutcomeResolved RouteOutcome = "resolved"

	// OutcomeFallback means the root entry was served unmatched.
	OutcomeFallback RouteOutcome = "fallback"
)

// RouteRecord is one routing decision captured in the route log.
type RouteRecord struct {
	// ID is the unique record identifier.
	ID string

	// Query is the raw query text as received.
	Query string

	// Outcome classifies the decision.
	Outcome RouteOutcome

	// SkillIDs lists the returned skills in rank order.
	SkillIDs []string

	// CreatedAt is when the decision was made.
	CreatedAt time.Time
}

// SkillHits counts how often one skill was routed to.
type SkillHits struct {
	// SkillID identifies the skill.
	SkillID string

	// Hits is the number of route responses the skill appeared in.
	Hits int
}

// RouteStats aggregates the route log for reporting.
type RouteStats struct {
	// TotalQueries is the number of recorded routing decisions.
	TotalQueries int

	// Resolved counts decisions where keywords matched.
	Resolved int

	// Fallbacks counts decisions served by the root entry.
	Fallbacks int

	// TopSkills lists the most frequently routed skills, busiest first.
	TopSkills []SkillHits
}
