package gazetteer

// MinistryKeywords are terms whose presence signals a named ministry or
// department mention, in English, romanized Hindi, Hindi (Devanagari)
// and Kannada. Ported from confidence_scorer.py's MINISTRY_KEYWORDS.
var MinistryKeywords = []string{
	"ministry", "mantralaya", "मंत्रालय", "ಮಂತ್ರಾಲಯ",
	"minister", "mantri", "मंत्री", "ಮಂತ್ರಿ",
	"department", "vibhag", "विभाग", "ವಿಭಾಗ",
}
