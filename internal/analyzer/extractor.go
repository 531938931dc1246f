// internal/analyzer/extractor.go
package analyzer

import (
	"regexp"
	"strconv"
	"strings"

	"cloud-advisor/internal/models"
)

// Pattern groups are evaluated independently: a match in one group never
// blocks another group from matching over the same text. Within a group the
// first matching pattern wins. All matching is case-insensitive; short
// ambiguous tokens (ha, db, us, eu) carry word boundaries so they do not
// fire inside unrelated words.
var (
	websitePatterns = []struct {
		re    *regexp.Regexp
		value models.WebsiteType
	}{
		{regexp.MustCompile(`(?i)(static|simple)\s+(website|site|web\s+page)`), models.WebsiteStatic},
		{regexp.MustCompile(`(?i)(dynamic|interactive)\s+(website|site|web\s+application)`), models.WebsiteDynamic},
		{regexp.MustCompile(`(?i)(e-commerce|ecommerce|online\s+store|shop)`), models.WebsiteEcommerce},
		{regexp.MustCompile(`(?i)(blog|content\s+management|cms)`), models.WebsiteBlog},
		{regexp.MustCompile(`(?i)(api|backend|service)`), models.WebsiteAPI},
	}

	trafficPatterns = []struct {
		re    *regexp.Regexp
		value models.TrafficLevel
	}{
		{regexp.MustCompile(`(?i)(low|small|minimal)\s+(traffic|visitors|users)`), models.TrafficLow},
		{regexp.MustCompile(`(?i)(medium|moderate)\s+(traffic|visitors|users)`), models.TrafficMedium},
		{regexp.MustCompile(`(?i)(high|large|heavy|substantial)\s+(traffic|visitors|users)`), models.TrafficHigh},
	}

	databaseTrigger     = regexp.MustCompile(`(?i)(database|\bdb\b|data\s+storage)`)
	relationalPattern   = regexp.MustCompile(`(?i)(sql|relational|mysql|postgresql)`)
	nosqlPattern        = regexp.MustCompile(`(?i)(nosql|mongodb|document|key-value)`)
	storagePattern      = regexp.MustCompile(`(?i)(\d+)\s*(gb|tb|gigabytes|terabytes)`)
	budgetPattern       = regexp.MustCompile(`(?i)budget\s+of\s+\$?(\d+)`)
	availabilityPattern = regexp.MustCompile(`(?i)(high\s+availability|\bha\b|always\s+available|99\.9)`)
	scalingPattern      = regexp.MustCompile(`(?i)(scal(e|ing|able)|grow|expand)`)

	regionPatterns = []struct {
		re    *regexp.Regexp
		value models.Region
	}{
		{regexp.MustCompile(`(?i)(\bus\b|united\s+states|america)`), models.RegionUS},
		{regexp.MustCompile(`(?i)(europe|\beu\b|european)`), models.RegionEU},
		{regexp.MustCompile(`(?i)(asia|apac|asia\s+pacific)`), models.RegionAsia},
	}
)

// Extract scans the ordered conversation for deterministic patterns and
// returns the flat signal set. Identical input always yields identical
// output; a category with no match is left unset.
func Extract(messages []models.ConversationMessage) models.ExtractedSignals {
	contents := make([]string, 0, len(messages))
	for _, msg := range messages {
		contents = append(contents, msg.Content)
	}
	fullText := strings.Join(contents, " ")

	var signals models.ExtractedSignals

	for _, p := range websitePatterns {
		if p.re.MatchString(fullText) {
			signals.WebsiteType = p.value
			break
		}
	}

	for _, p := range trafficPatterns {
		if p.re.MatchString(fullText) {
			signals.TrafficLevel = p.value
			break
		}
	}

	if databaseTrigger.MatchString(fullText) {
		switch {
		case relationalPattern.MatchString(fullText):
			signals.DatabaseKind = models.DatabaseRelational
		case nosqlPattern.MatchString(fullText):
			signals.DatabaseKind = models.DatabaseNoSQL
		default:
			signals.DatabaseKind = models.DatabaseGeneral
		}
	}

	// Only the first quantity in the text counts; terabytes convert to GB.
	if m := storagePattern.FindStringSubmatch(fullText); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err == nil {
			unit := strings.ToLower(m[2])
			if unit == "tb" || unit == "terabytes" {
				amount *= 1024
			}
			signals.StorageAmountGBs = amount
		}
	}

	if m := budgetPattern.FindStringSubmatch(fullText); m != nil {
		if budget, err := strconv.Atoi(m[1]); err == nil {
			signals.BudgetUSD = budget
		}
	}

	// Availability has a single tier: present means "high", absent stays unset.
	if availabilityPattern.MatchString(fullText) {
		signals.AvailabilityLevel = "high"
	}

	if scalingPattern.MatchString(fullText) {
		signals.ScalingRequired = true
	}

	for _, p := range regionPatterns {
		if p.re.MatchString(fullText) {
			signals.Region = p.value
			break
		}
	}

	return signals
}
