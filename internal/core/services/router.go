package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

// Ensure RouterService implements the interface.
var _ driving.RouterService = (*RouterService)(nil)

// RouterService matches queries against skill trigger keywords and
// ranks the results.
type RouterService struct {
	catalog  driven.RegistryProvider
	routeLog driven.RouteLogStore
}

// NewRouterService creates a new router service.
// The routeLog parameter is optional (can be nil); routing decisions
// are then not recorded.
func NewRouterService(catalog driven.RegistryProvider, routeLog driven.RouteLogStore) *RouterService {
	return &RouterService{
		catalog:  catalog,
		routeLog: routeLog,
	}
}

// Route ranks skills by how many distinct trigger keywords appear in
// the query, declaration order breaking ties. When nothing matches,
// or the query holds no usable tokens, the root entry is served as a
// single fallback match, so a loaded catalog always answers.
func (s *RouterService) Route(ctx context.Context, query string, opts domain.RouteOptions) ([]domain.Match, error) {
	reg := s.catalog.Registry()
	if reg == nil {
		return nil, fmt.Errorf("route %q: catalog not loaded", query)
	}

	logger.Section("Route")
	logger.Debug("Query: %q", query)

	tokens := tokenise(query)
	phrase := strings.Join(tokens, " ")
	logger.Debug("Tokens: %v", tokens)

	var matches []domain.Match
	if len(tokens) > 0 {
		for _, skill := range reg.Skills() {
			matched := matchedKeywords(skill.Keywords, tokens, phrase)
			if len(matched) == 0 {
				continue
			}
			matches = append(matches, domain.Match{
				Skill:           skill,
				MatchedKeywords: matched,
				Score:           len(matched),
			})
		}
	}

	outcome := domain.OutcomeResolved
	if len(matches) == 0 {
		outcome = domain.OutcomeFallback
		matches = append(matches, domain.Match{Skill: reg.Root(), Fallback: true})
		logger.Debug("No keyword matches, serving root %q", reg.Root().ID)
	}

	// Candidates arrive in declaration order, so a stable sort keeps
	// that order within equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	logger.Info("Routed %q to %d skill(s), outcome=%s", query, len(matches), outcome)
	s.record(ctx, query, outcome, matches)

	return matches, nil
}

// record captures the decision in the route log. Failures are logged
// and swallowed: answering the query always wins over bookkeeping.
func (s *RouterService) record(ctx context.Context, query string, outcome domain.RouteOutcome, matches []domain.Match) {
	if s.routeLog == nil {
		return
	}

	rec := &domain.RouteRecord{
		ID:        uuid.NewString(),
		Query:     query,
		Outcome:   outcome,
		SkillIDs:  make([]string, 0, len(matches)),
		CreatedAt: time.Now().UTC(),
	}
	for _, m := range matches {
		rec.SkillIDs = append(rec.SkillIDs, m.Skill.ID)
	}

	if err := s.routeLog.Record(ctx, rec); err != nil {
		logger.Warn("Route log write failed: %v", err)
	}
}

// tokenise lowercases the query and splits it on anything that is not
// a letter, digit or hyphen. Hyphens survive so compound terms such as
// "vip-191" stay whole; stray leading or trailing hyphens are trimmed.
func tokenise(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// matchedKeywords returns the skill keywords present in the query, in
// the skill's declaration order. Registry construction already
// de-duplicated keywords, so distinctness is free.
func matchedKeywords(keywords, tokens []string, phrase string) []string {
	var matched []string
	for _, k := range keywords {
		if keywordMatches(k, tokens, phrase) {
			matched = append(matched, k)
		}
	}
	return matched
}

// keywordMatches reports whether one keyword occurs in the query.
//
// A single-word keyword matches a whole token or a token's prefix,
// which picks up plurals ("transaction" hits "transactions") without
// the false hits of a bare substring test ("test" must not hit
// "latest"). A phrase keyword matches the normalised query at a word
// boundary, with the same prefix tolerance on its final word.
func keywordMatches(keyword string, tokens []string, phrase string) bool {
	if strings.Contains(keyword, " ") {
		return strings.Contains(" "+phrase, " "+keyword)
	}
	for _, t := range tokens {
		if strings.HasPrefix(t, keyword) {
			return true
		}
	}
	return false
}
