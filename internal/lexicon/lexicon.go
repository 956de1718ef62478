// Package lexicon holds the categorized anchor tables the extraction
// pipeline scans reflection text against. Tables are package-level and
// read-only after init.
package lexicon

// #region event-anchors

// EventAnchors maps event words to a signed weight in [-1, 1]. Positive
// weights describe good events, negative weights bad events. These score
// what happened, not how the writer feels about it.
var EventAnchors = map[string]float64{
	// positive events
	"promoted":    0.9,
	"promotion":   0.9,
	"raise":       0.8,
	"hired":       0.8,
	"won":         0.8,
	"passed":      0.7,
	"graduated":   0.9,
	"engaged":     0.8,
	"married":     0.8,
	"accepted":    0.7,
	"approved":    0.6,
	"recovered":   0.7,
	"healed":      0.6,
	"succeeded":   0.8,
	"finished":    0.5,
	"completed":   0.5,
	"launched":    0.6,
	"published":   0.7,
	"birthday":    0.4,
	"vacation":    0.5,
	"reunion":     0.5,
	"bonus":       0.6,
	"award":       0.8,
	"improved":    0.5,
	// negative events
	"fired":       -0.9,
	"laid":        -0.8, // "laid off"
	"rejected":    -0.7,
	"failed":      -0.8,
	"lost":        -0.6,
	"divorce":     -0.8,
	"divorced":    -0.8,
	"breakup":     -0.7,
	"accident":    -0.7,
	"crash":       -0.7,
	"diagnosed":   -0.6,
	"hospital":    -0.5,
	"surgery":     -0.5,
	"died":        -0.9,
	"death":       -0.9,
	"funeral":     -0.8,
	"debt":        -0.6,
	"evicted":     -0.8,
	"bankrupt":    -0.9,
	"robbed":      -0.7,
	"injured":     -0.6,
	"sick":        -0.4,
	"demoted":     -0.7,
	"suspended":   -0.6,
	"cancelled":   -0.4,
	"missed":      -0.4,
	"broke":       -0.5,
	"argument":    -0.4,
	"fight":       -0.5,
	"cheated":     -0.8,
	"deadline":    -0.3,
	"overdue":     -0.4,
	"audit":       -0.3,
}

// EffortWords describe exertion without carrying event valence; they are
// excluded from anchor scoring so "worked hard all week" stays neutral.
var EffortWords = map[string]bool{
	"worked": true, "working": true, "tried": true, "trying": true,
	"studied": true, "studying": true, "practiced": true, "prepared": true,
	"pushed": true, "grinding": true, "hustled": true, "effort": true,
}

// #endregion event-anchors

// #region emotion-terms

// EmotionTerm carries the affect coordinates of a feeling word. Valence
// is signed [-1, 1]; Arousal in [0, 1]. Primary is the wheel family the
// term votes for in the rule-only classifier fallback.
type EmotionTerm struct {
	Valence float64
	Arousal float64
	Primary string
}

// EmotionTerms maps feeling words to coordinates. Scored independently of
// event anchors so "promoted but terrified" splits cleanly.
var EmotionTerms = map[string]EmotionTerm{
	"happy":       {0.8, 0.6, "joy"},
	"glad":        {0.6, 0.5, "joy"},
	"joyful":      {0.9, 0.7, "joy"},
	"thrilled":    {0.9, 0.8, "joy"},
	"excited":     {0.8, 0.8, "joy"},
	"proud":       {0.8, 0.6, "joy"},
	"grateful":    {0.7, 0.4, "joy"},
	"content":     {0.6, 0.3, "joy"},
	"relieved":    {0.6, 0.35, "joy"},
	"delighted":   {0.8, 0.65, "joy"},
	"amused":      {0.6, 0.5, "joy"},
	"hopeful":     {0.6, 0.5, "joy"},
	"sad":         {-0.7, 0.35, "sadness"},
	"unhappy":     {-0.6, 0.35, "sadness"},
	"miserable":   {-0.8, 0.4, "sadness"},
	"depressed":   {-0.85, 0.3, "sadness"},
	"heartbroken": {-0.9, 0.5, "sadness"},
	"lonely":      {-0.65, 0.3, "sadness"},
	"hopeless":    {-0.9, 0.35, "sadness"},
	"empty":       {-0.7, 0.25, "sadness"},
	"devastated":  {-0.9, 0.55, "sadness"},
	"disappointed": {-0.55, 0.35, "sadness"},
	"gutted":      {-0.8, 0.45, "sadness"},
	"angry":       {-0.6, 0.75, "anger"},
	"mad":         {-0.6, 0.7, "anger"},
	"furious":     {-0.8, 0.9, "anger"},
	"livid":       {-0.85, 0.9, "anger"},
	"annoyed":     {-0.4, 0.55, "anger"},
	"frustrated":  {-0.5, 0.65, "anger"},
	"irritated":   {-0.45, 0.55, "anger"},
	"resentful":   {-0.6, 0.55, "anger"},
	"bitter":      {-0.6, 0.5, "anger"},
	"outraged":    {-0.7, 0.85, "anger"},
	"disgusted":   {-0.65, 0.5, "anger"},
	"afraid":      {-0.6, 0.7, "fear"},
	"scared":      {-0.65, 0.75, "fear"},
	"terrified":   {-0.9, 0.9, "fear"},
	"anxious":     {-0.55, 0.7, "fear"},
	"worried":     {-0.5, 0.6, "fear"},
	"nervous":     {-0.45, 0.65, "fear"},
	"panicked":    {-0.85, 0.95, "fear"},
	"overwhelmed": {-0.6, 0.75, "fear"},
	"stressed":    {-0.55, 0.7, "fear"},
	"dreading":    {-0.65, 0.6, "fear"},
	"insecure":    {-0.5, 0.5, "fear"},
	"uneasy":      {-0.45, 0.55, "fear"},
	"surprised":   {0.1, 0.7, "surprise"},
	"shocked":     {-0.3, 0.85, "surprise"},
	"stunned":     {-0.2, 0.8, "surprise"},
	"amazed":      {0.5, 0.75, "surprise"},
	"confused":    {-0.2, 0.55, "surprise"},
	"bewildered":  {-0.25, 0.6, "surprise"},
	"blindsided":  {-0.4, 0.8, "surprise"},
	"torn":        {0.0, 0.5, "surprise"},
	"conflicted":  {0.0, 0.5, "surprise"},
	"determined":  {0.45, 0.65, "resilience"},
	"resolved":    {0.4, 0.55, "resilience"},
	"brave":       {0.5, 0.6, "resilience"},
	"strong":      {0.45, 0.55, "resilience"},
	"capable":     {0.45, 0.5, "resilience"},
	"empowered":   {0.55, 0.6, "resilience"},
	"steady":      {0.35, 0.35, "resilience"},
	"grounded":    {0.4, 0.3, "resilience"},
	"resilient":   {0.5, 0.5, "resilience"},
	"unstoppable": {0.6, 0.7, "resilience"},
}

// #endregion emotion-terms

// #region modifiers

// Negators maps negation tokens to a base strength class.
var Negators = map[string]string{
	"not":     "moderate",
	"no":      "moderate",
	"never":   "strong",
	"cant":    "weak",
	"wont":    "weak",
	"dont":    "weak",
	"didnt":   "moderate",
	"isnt":    "moderate",
	"wasnt":   "moderate",
	"nothing": "strong",
	"nobody":  "strong",
	"hardly":  "weak",
	"barely":  "weak",
	"without": "weak",
}

// ScopeBreakers end a negation scope mid-sentence.
var ScopeBreakers = map[string]bool{
	"but": true, "however": true, "although": true, "though": true,
	"yet": true, "because": true, "since": true, "except": true,
}

// Hedges soften claims and feed the neutral gate and willingness signal.
var Hedges = map[string]bool{
	"maybe": true, "perhaps": true, "kind": true, "sort": true,
	"guess": true, "possibly": true, "somewhat": true, "probably": true,
	"slightly": true, "apparently": true, "suppose": true, "seems": true,
	"sorta": true, "kinda": true, "ish": true,
}

// Intensifiers amplify adjacent emotion terms and raise expressed
// intensity.
var Intensifiers = map[string]float64{
	"very": 0.15, "really": 0.15, "so": 0.1, "extremely": 0.25,
	"incredibly": 0.25, "totally": 0.2, "completely": 0.2,
	"absolutely": 0.25, "utterly": 0.25, "deeply": 0.2, "beyond": 0.2,
	"insanely": 0.25,
}

// AgencyVerbs signal the writer acting on the situation; they drive the
// control estimate and the concession rerank rule.
var AgencyVerbs = map[string]bool{
	"decided": true, "chose": true, "handled": true, "managed": true,
	"fixed": true, "organized": true, "planned": true, "refused": true,
	"confronted": true, "negotiated": true, "built": true, "started": true,
	"quit": true, "asked": true, "spoke": true, "stood": true,
	"took": true, "faced": true, "pushed": true, "committed": true,
}

// SarcasmCues are phrases that flip an ostensibly positive reading when
// paired with a negative event.
var SarcasmCues = []string{
	"yeah right", "oh great", "just great", "just perfect", "oh wonderful",
	"how lovely", "lucky me", "of course it did", "as always", "what a joy",
	"couldn't be better", "living the dream", "fantastic news",
}

// #endregion modifiers

// #region profanity

// ProfanityCategory classifies swearing by communicative function.
type ProfanityCategory string

const (
	ProfanityNone       ProfanityCategory = "none"
	ProfanityEmphatic   ProfanityCategory = "emphatic"   // intensity marker
	ProfanityDirected   ProfanityCategory = "directed"   // aimed at someone
	ProfanityExpletive  ProfanityCategory = "expletive"  // standalone outburst
)

// ProfanityTerms maps tokens to their default category. A term directly
// preceding a person reference upgrades to directed at extraction time.
var ProfanityTerms = map[string]ProfanityCategory{
	"damn": ProfanityEmphatic, "dammit": ProfanityExpletive,
	"hell": ProfanityEmphatic, "shit": ProfanityExpletive,
	"shitty": ProfanityEmphatic, "fuck": ProfanityExpletive,
	"fucking": ProfanityEmphatic, "fucked": ProfanityEmphatic,
	"bullshit": ProfanityExpletive, "crap": ProfanityExpletive,
	"crappy": ProfanityEmphatic, "asshole": ProfanityDirected,
	"bastard": ProfanityDirected, "idiot": ProfanityDirected,
	"jerk": ProfanityDirected,
}

// #endregion profanity

// #region domains

// DomainKeywords maps each life domain to its cue words.
var DomainKeywords = map[string][]string{
	"work": {
		"job", "boss", "work", "office", "meeting", "project", "deadline",
		"coworker", "colleague", "client", "promotion", "promoted", "salary",
		"interview", "fired", "hired", "career", "shift", "manager",
	},
	"relationships": {
		"boyfriend", "girlfriend", "partner", "husband", "wife", "date",
		"dating", "breakup", "divorce", "friend", "friends", "friendship",
		"relationship", "ex", "crush", "argument",
	},
	"health": {
		"doctor", "hospital", "diagnosis", "diagnosed", "therapy",
		"therapist", "medication", "sick", "illness", "pain", "sleep",
		"insomnia", "gym", "surgery", "symptoms", "anxiety", "panic",
	},
	"finance": {
		"money", "rent", "debt", "loan", "bills", "savings", "salary",
		"paycheck", "mortgage", "bank", "budget", "broke", "afford",
		"expenses", "bankrupt",
	},
	"education": {
		"exam", "test", "class", "course", "school", "college", "university",
		"grade", "grades", "professor", "study", "studying", "thesis",
		"assignment", "semester", "graduated",
	},
	"family": {
		"mom", "dad", "mother", "father", "parents", "sister", "brother",
		"son", "daughter", "kids", "children", "grandma", "grandpa",
		"family", "aunt", "uncle", "cousin",
	},
}

// #endregion domains

// #region polarity

// PlannedCues mark events that have not happened yet.
var PlannedCues = []string{
	"will", "going to", "tomorrow", "next week", "next month", "planning",
	"plan to", "about to", "scheduled", "upcoming", "soon",
}

// NotHappenedCues mark events that were expected but did not occur.
var NotHappenedCues = []string{
	"didn't happen", "never happened", "fell through", "was cancelled",
	"got cancelled", "called off", "didn't go", "didn't get", "never came",
	"no show", "didn't show",
}

// #endregion polarity

// #region risk-terms

// RiskTier ranks risk lexicon hits by severity.
type RiskTier string

const (
	RiskCritical RiskTier = "critical"
	RiskElevated RiskTier = "elevated"
	RiskTrend    RiskTier = "trend"
)

// RiskTerms maps phrases to their tier. Matched against normalized text
// as substrings, most severe tier wins per phrase.
var RiskTerms = map[string]RiskTier{
	"kill myself":        RiskCritical,
	"end my life":        RiskCritical,
	"suicide":            RiskCritical,
	"suicidal":           RiskCritical,
	"self harm":          RiskCritical,
	"hurt myself":        RiskCritical,
	"better off without me": RiskCritical,
	"no reason to live":  RiskCritical,
	"want to disappear":  RiskElevated,
	"can't go on":        RiskElevated,
	"give up on everything": RiskElevated,
	"hopeless":           RiskElevated,
	"worthless":          RiskElevated,
	"hate myself":        RiskElevated,
	"no way out":         RiskElevated,
	"what's the point":   RiskElevated,
	"depression":         RiskElevated,
	"depressed":          RiskElevated,
	"anxiety":            RiskElevated,
	"panic attack":       RiskElevated,
	"numb":               RiskTrend,
	"can't sleep":        RiskTrend,
	"not eating":         RiskTrend,
	"drinking too much":  RiskTrend,
	"alone again":        RiskTrend,
	"always tired":       RiskTrend,
	"exhausted":          RiskTrend,
}

// #endregion risk-terms
