package domain

// TopicRule maps a group of trigger keywords to a fixed reply.
// Exact rules match the whole trimmed message, others match substrings.
type TopicRule struct {
	Name     string
	Keywords []string
	Reply    string
	Exact    bool
}

// KeywordGroup labels a set of keywords for the clarifying fallback.
type KeywordGroup struct {
	Label    string
	Keywords []string
}

// Profile is the configuration value distinguishing deployment variants.
// One profile is loaded at startup; components never mutate it.
type Profile struct {
	Name          string
	Domain        string
	SystemContext string

	// Canned responses
	Greetings     []string
	GreetingReply string
	Thanks        []string
	ThanksReply   string
	EmptyReply    string
	Topics        []TopicRule
	RepeatReplies []string

	// Classification
	RestrictDomain   bool
	DomainKeywords   []string
	OffTopicKeywords []string
	QuestionWords    []string
	ContextTerms     []string

	// Entity extraction
	EntityMarkers   []string
	EntitySuffixes  []string
	EntityStopwords []string

	// Fallbacks
	OffDomainReply string
	FallbackFormat string
	KeywordFormat  string
	GenericReply   string
	FallbackGroups []KeywordGroup

	// Candidate output must itself look domain-related.
	CheckOutputDomain bool
}
