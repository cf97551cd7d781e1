// Package conversation turns prompt input into intents and delivers
// notifications back to the player.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches prompt input to intents using keywords and simple
// patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
	// payload is the capture group carried as the intent payload, or 0.
	payload int
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(list|plans|browse|ls)$`), domain.IntentListPlans, 0},
		{regexp.MustCompile(`(?i)^(?:pick|select|choose)\s+(.+)$`), domain.IntentSelectPlan, 1},
		{regexp.MustCompile(`(?i)^(\d{1,2})$`), domain.IntentSelectPlan, 1},
		{regexp.MustCompile(`(?i)^(start|begin|go|play)$`), domain.IntentStartRun, 0},
		{regexp.MustCompile(`(?i)^(query|current|what|q\?|\?\?)$`), domain.IntentQuery, 0},
		{regexp.MustCompile(`(?i)^(apply|craft|next|n|step)$`), domain.IntentApply, 0},
		{regexp.MustCompile(`(?i)^(reset|again|new round|restart)$`), domain.IntentReset, 0},
		{regexp.MustCompile(`(?i)^(show|display|recipes)$`), domain.IntentShow, 0},
		{regexp.MustCompile(`(?i)^(stock|stockpile|inventory|inv)$`), domain.IntentStock, 0},
		{regexp.MustCompile(`(?i)^add\s+(\S+)$`), domain.IntentAdd, 1},
		{regexp.MustCompile(`(?i)^(?:replace|swap)\s+(.+)$`), domain.IntentReplace, 1},
		{regexp.MustCompile(`(?i)^(remove|drop|pop)$`), domain.IntentRemove, 0},
		{regexp.MustCompile(`(?i)^(fork|copy|branch)$`), domain.IntentFork, 0},
		{regexp.MustCompile(`(?i)^(status|where|progress|info)$`), domain.IntentStatus, 0},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, 0},
		{regexp.MustCompile(`(?i)^(quit|exit|bye|abandon)$`), domain.IntentQuit, 0},
	}
	return p
}

// Parse converts prompt input into an intent. Unmatched input yields
// IntentUnknown carrying the trimmed input.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.Join(strings.Fields(input), " ")
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if rule.payload > 0 {
			intent.Payload = m[rule.payload]
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}
