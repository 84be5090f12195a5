package recipes

// Primary-query time budget ratios. The strict pass assumes prep and cook
// overlap poorly, so each phase gets a fraction of the overall limit; the
// fallback pass checks prep time against the full limit only.
const (
	PrimaryPrepRatio = 0.6
	PrimaryCookRatio = 0.8
)

// Log messages
const (
	LogMsgPrimaryFilter    = "Running primary recipe filter"
	LogMsgFallbackFilter   = "Primary filter empty, running fallback"
	LogMsgCandidatesFound  = "Recipe candidates selected"
	LogMsgAllergyExclusion = "Recipe excluded by allergy pass"
)

// Error context strings
const (
	ErrContextPrimaryQueryFailed  = "primary recipe query failed"
	ErrContextFallbackQueryFailed = "fallback recipe query failed"
)
