package wheel

// #region table-types

type secondaryEntry struct {
	node   Node
	leaves []string
}

type primaryEntry struct {
	node     Node
	children []secondaryEntry
}

// #endregion table-types

// #region table

// table is the full 6x6x6 wheel. Label sets are closed: selection code
// never emits a label that is not in this table. Leaf labels are unique
// across the whole wheel so a leaf resolves to exactly one path.
var table = []primaryEntry{
	{
		node: Node{Label: "joy", Valence: 0.80, Arousal: 0.60, Phrase: []string{"happy", "glad", "joyful", "pleased", "wonderful"}},
		children: []secondaryEntry{
			{node: Node{Label: "contentment", Valence: 0.65, Arousal: 0.30, Phrase: []string{"content", "satisfied", "at peace", "relaxed", "calm"}},
				leaves: []string{"satisfaction", "peacefulness", "serenity", "comfort", "ease", "fulfillment"}},
			{node: Node{Label: "achievement", Valence: 0.80, Arousal: 0.60, Phrase: []string{"proud", "accomplished", "succeeded", "achieved", "won"}},
				leaves: []string{"pride", "accomplishment", "triumph", "mastery", "competence", "validation"}},
			{node: Node{Label: "enthusiasm", Valence: 0.80, Arousal: 0.80, Phrase: []string{"excited", "thrilled", "eager", "pumped", "can't wait"}},
				leaves: []string{"excitement", "eagerness", "zest", "exhilaration", "keenness", "thrill"}},
			{node: Node{Label: "connection", Valence: 0.75, Arousal: 0.45, Phrase: []string{"loved", "close", "together", "supported", "appreciated"}},
				leaves: []string{"warmth", "affection", "belonging", "closeness", "tenderness", "appreciation"}},
			{node: Node{Label: "amusement", Valence: 0.70, Arousal: 0.55, Phrase: []string{"fun", "funny", "laughed", "playful", "silly"}},
				leaves: []string{"playfulness", "delight", "cheerfulness", "humor", "lightness", "glee"}},
			{node: Node{Label: "hope", Valence: 0.65, Arousal: 0.50, Phrase: []string{"hopeful", "optimistic", "looking forward", "inspired", "promising"}},
				leaves: []string{"optimism", "encouragement", "inspiration", "assurance", "brightness", "uplift"}},
		},
	},
	{
		node: Node{Label: "sadness", Valence: -0.70, Arousal: 0.35, Phrase: []string{"sad", "down", "unhappy", "miserable", "crying"}},
		children: []secondaryEntry{
			{node: Node{Label: "grief", Valence: -0.85, Arousal: 0.45, Phrase: []string{"lost", "grieving", "passed away", "death", "mourning"}},
				leaves: []string{"loss", "mourning", "heartbreak", "sorrow", "bereavement", "anguish"}},
			{node: Node{Label: "disappointment", Valence: -0.55, Arousal: 0.35, Phrase: []string{"disappointed", "let down", "fell through", "didn't work out", "expected more"}},
				leaves: []string{"letdown", "disillusionment", "regret", "discouragement", "dismay", "deflation"}},
			{node: Node{Label: "loneliness", Valence: -0.65, Arousal: 0.30, Phrase: []string{"alone", "lonely", "no one", "left out", "by myself"}},
				leaves: []string{"isolation", "abandonment", "exclusion", "alienation", "homesickness", "neglect"}},
			{node: Node{Label: "despair", Valence: -0.90, Arousal: 0.40, Phrase: []string{"hopeless", "pointless", "give up", "no way out", "empty"}},
				leaves: []string{"hopelessness", "defeat", "desolation", "gloom", "emptiness", "futility"}},
			{node: Node{Label: "hurt", Valence: -0.65, Arousal: 0.45, Phrase: []string{"hurt", "rejected", "betrayed", "ignored", "used"}},
				leaves: []string{"rejection", "betrayal", "woundedness", "slightedness", "unappreciation", "dismissal"}},
			{node: Node{Label: "melancholy", Valence: -0.45, Arousal: 0.25, Phrase: []string{"miss", "used to", "heavy", "tired of", "wistful"}},
				leaves: []string{"wistfulness", "nostalgia", "heaviness", "weariness", "longing", "blueness"}},
		},
	},
	{
		node: Node{Label: "anger", Valence: -0.60, Arousal: 0.75, Phrase: []string{"angry", "mad", "furious", "pissed", "annoyed"}},
		children: []secondaryEntry{
			{node: Node{Label: "frustration", Valence: -0.50, Arousal: 0.65, Phrase: []string{"frustrated", "stuck", "again and again", "nothing works", "fed up"}},
				leaves: []string{"exasperation", "irritation", "annoyance", "impatience", "aggravation", "agitation"}},
			{node: Node{Label: "resentment", Valence: -0.60, Arousal: 0.55, Phrase: []string{"unfair to me", "they always", "why them", "never me", "grudge"}},
				leaves: []string{"bitterness", "envy", "jealousy", "spite", "begrudging", "rancor"}},
			{node: Node{Label: "indignation", Valence: -0.55, Arousal: 0.70, Phrase: []string{"unfair", "unjust", "how dare", "wrong of them", "unacceptable"}},
				leaves: []string{"outrage", "umbrage", "offense", "disapproval", "protest", "objection"}},
			{node: Node{Label: "rage", Valence: -0.80, Arousal: 0.95, Phrase: []string{"furious", "livid", "exploded", "screaming", "lost it"}},
				leaves: []string{"fury", "wrath", "hostility", "vengefulness", "explosiveness", "seething"}},
			{node: Node{Label: "contempt", Valence: -0.65, Arousal: 0.50, Phrase: []string{"pathetic", "disgusting", "beneath me", "can't respect", "ridiculous"}},
				leaves: []string{"disdain", "scorn", "disgust", "disrespect", "loathing", "derision"}},
			{node: Node{Label: "defiance", Valence: -0.35, Arousal: 0.70, Phrase: []string{"won't let", "refuse", "push back", "not backing down", "stand my ground"}},
				leaves: []string{"rebellion", "stubbornness", "opposition", "resistance", "obstinacy", "confrontation"}},
		},
	},
	{
		node: Node{Label: "fear", Valence: -0.60, Arousal: 0.70, Phrase: []string{"afraid", "scared", "terrified", "worried", "anxious"}},
		children: []secondaryEntry{
			{node: Node{Label: "anxiety", Valence: -0.55, Arousal: 0.70, Phrase: []string{"anxious", "worried", "can't stop thinking", "on edge", "what if"}},
				leaves: []string{"worry", "unease", "apprehension", "nervousness", "restlessness", "jitteriness"}},
			{node: Node{Label: "dread", Valence: -0.70, Arousal: 0.60, Phrase: []string{"dreading", "coming", "looming", "can't avoid", "impending"}},
				leaves: []string{"foreboding", "trepidation", "alarm", "ominousness", "menace", "doom"}},
			{node: Node{Label: "insecurity", Valence: -0.50, Arousal: 0.50, Phrase: []string{"not good enough", "imposter", "don't belong", "everyone will see", "fraud"}},
				leaves: []string{"inadequacy", "doubt", "vulnerability", "exposure", "fragility", "timidity"}},
			{node: Node{Label: "panic", Valence: -0.85, Arousal: 0.95, Phrase: []string{"panicking", "can't breathe", "heart racing", "freaking out", "terror"}},
				leaves: []string{"terror", "horror", "hysteria", "paralysis", "frenzy", "desperation"}},
			{node: Node{Label: "overwhelm", Valence: -0.60, Arousal: 0.75, Phrase: []string{"too much", "drowning", "can't keep up", "piling up", "buried"}},
				leaves: []string{"pressure", "overload", "drowning", "suffocation", "swampedness", "burnout"}},
			{node: Node{Label: "avoidance", Valence: -0.40, Arousal: 0.45, Phrase: []string{"putting off", "avoiding", "can't face", "hiding from", "not ready"}},
				leaves: []string{"hesitance", "reluctance", "withdrawal", "flinching", "evasion", "freezing"}},
		},
	},
	{
		node: Node{Label: "surprise", Valence: 0.10, Arousal: 0.70, Phrase: []string{"surprised", "unexpected", "out of nowhere", "suddenly", "didn't see coming"}},
		children: []secondaryEntry{
			{node: Node{Label: "astonishment", Valence: 0.40, Arousal: 0.75, Phrase: []string{"amazed", "incredible", "unbelievable", "wow", "in awe"}},
				leaves: []string{"amazement", "awe", "wonder", "disbelief", "marvel", "stupefaction"}},
			{node: Node{Label: "confusion", Valence: -0.20, Arousal: 0.55, Phrase: []string{"confused", "don't understand", "makes no sense", "lost track", "unclear"}},
				leaves: []string{"bewilderment", "perplexity", "disorientation", "puzzlement", "bafflement", "fogginess"}},
			{node: Node{Label: "shock", Valence: -0.30, Arousal: 0.85, Phrase: []string{"shocked", "stunned", "blindsided", "out of the blue", "can't believe"}},
				leaves: []string{"jolt", "startle", "stunnedness", "blindside", "whiplash", "reeling"}},
			{node: Node{Label: "realization", Valence: 0.35, Arousal: 0.55, Phrase: []string{"realized", "it hit me", "finally see", "clicked", "understand now"}},
				leaves: []string{"epiphany", "insight", "discovery", "recognition", "clarity", "awakening"}},
			{node: Node{Label: "ambivalence", Valence: 0.00, Arousal: 0.45, Phrase: []string{"mixed feelings", "torn", "part of me", "on one hand", "not sure how to feel"}},
				leaves: []string{"conflictedness", "indecision", "wavering", "tornness", "equivocation", "irresolution"}},
			{node: Node{Label: "disruption", Valence: -0.25, Arousal: 0.65, Phrase: []string{"everything changed", "turned upside down", "thrown off", "derailed", "upheaval"}},
				leaves: []string{"destabilization", "unexpectedness", "curveball", "surreality", "displacement", "dislocation"}},
		},
	},
	{
		node: Node{Label: "resilience", Valence: 0.40, Arousal: 0.55, Phrase: []string{"keep going", "push through", "handle it", "stronger", "not giving up"}},
		children: []secondaryEntry{
			{node: Node{Label: "determination", Valence: 0.45, Arousal: 0.65, Phrase: []string{"determined", "will do", "committed", "whatever it takes", "focused"}},
				leaves: []string{"resolve", "grit", "persistence", "tenacity", "willpower", "drive"}},
			{node: Node{Label: "courage", Valence: 0.50, Arousal: 0.65, Phrase: []string{"brave", "faced it", "despite the fear", "stood up", "dared"}},
				leaves: []string{"bravery", "boldness", "daring", "fortitude", "valor", "nerve"}},
			{node: Node{Label: "acceptance", Valence: 0.30, Arousal: 0.30, Phrase: []string{"made peace", "let go", "it is what it is", "came to terms", "accept"}},
				leaves: []string{"surrender", "acknowledgment", "accommodation", "reconciliation", "allowing", "equanimity"}},
			{node: Node{Label: "recovery", Valence: 0.40, Arousal: 0.40, Phrase: []string{"getting better", "healing", "back on my feet", "rebuilding", "recovering"}},
				leaves: []string{"healing", "rebound", "renewal", "restoration", "mending", "regrouping"}},
			{node: Node{Label: "agency", Valence: 0.45, Arousal: 0.55, Phrase: []string{"took control", "decided", "my choice", "handled", "managed to"}},
				leaves: []string{"empowerment", "initiative", "ownership", "autonomy", "assertiveness", "capability"}},
			{node: Node{Label: "growth", Valence: 0.50, Arousal: 0.45, Phrase: []string{"learned", "grew from", "perspective", "changed me", "wiser"}},
				leaves: []string{"learning", "adaptation", "maturation", "reframing", "wisdom", "transformation"}},
		},
	},
}

// #endregion table
