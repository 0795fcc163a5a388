package sentiment

// valence maps lowercase tokens to a polarity weight. The vocabulary leans
// toward financial-news wording since headlines are the only input.
var valence = map[string]float64{
	// positive
	"gain": 0.5, "gains": 0.5, "rally": 0.6, "rallies": 0.6,
	"surge": 0.7, "surges": 0.7, "soar": 0.8, "soars": 0.8,
	"jump": 0.5, "jumps": 0.5, "rise": 0.4, "rises": 0.4,
	"climb": 0.4, "climbs": 0.4, "record": 0.5, "beat": 0.6,
	"beats": 0.6, "strong": 0.5, "growth": 0.5, "profit": 0.5,
	"profits": 0.5, "upgrade": 0.7, "upgrades": 0.7, "upgraded": 0.7,
	"bullish": 0.7, "boost": 0.5, "boosts": 0.5, "outperform": 0.6,
	"win": 0.5, "wins": 0.5, "success": 0.6, "positive": 0.5,
	"good": 0.4, "great": 0.6, "best": 0.6, "high": 0.3,
	"recovery": 0.5, "rebound": 0.5, "rebounds": 0.5, "expand": 0.4,
	"expands": 0.4, "dividend": 0.3, "buyback": 0.4, "approval": 0.5,

	// negative
	"loss": -0.5, "losses": -0.5, "fall": -0.4, "falls": -0.4,
	"drop": -0.5, "drops": -0.5, "plunge": -0.7, "plunges": -0.7,
	"crash": -0.9, "crashes": -0.9, "slump": -0.6, "slumps": -0.6,
	"tumble": -0.6, "tumbles": -0.6, "sink": -0.5, "sinks": -0.5,
	"slide": -0.4, "slides": -0.4, "weak": -0.5, "miss": -0.5,
	"misses": -0.5, "missed": -0.5, "downgrade": -0.7, "downgrades": -0.7,
	"downgraded": -0.7, "bearish": -0.7, "cut": -0.4, "cuts": -0.4,
	"fraud": -0.9, "probe": -0.6, "investigation": -0.6, "lawsuit": -0.6,
	"fine": -0.4, "fined": -0.5, "penalty": -0.5, "debt": -0.3,
	"default": -0.7, "bankruptcy": -0.9, "layoff": -0.6, "layoffs": -0.6,
	"warns": -0.5, "warning": -0.5, "fear": -0.5, "fears": -0.5,
	"concern": -0.4, "concerns": -0.4, "risk": -0.3, "risks": -0.3,
	"bad": -0.4, "worst": -0.6, "negative": -0.5, "low": -0.3,
	"crisis": -0.7, "scandal": -0.8, "halt": -0.5, "halted": -0.5,
}

// negators flip the sign of the following sentiment-bearing token.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "without": true,
	"hardly": true, "barely": true,
}
