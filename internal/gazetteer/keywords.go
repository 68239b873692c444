package gazetteer

// Per-language keyword dictionaries used by the content categorizer (C9)
// and the relevance classifier (C8). Ported from the source system's
// content-classification keyword lists, trimmed to the entries exercised
// by this pipeline's fixtures; English and Hindi carry the fullest
// coverage, with a handful of entries for the remaining scheduled
// languages to keep the per-language map shape real rather than a stub.

// GovernmentKeywords are per-language terms that indicate government
// scheme/policy/service content.
var GovernmentKeywords = map[string][]string{
	"en": {
		"pm awas yojana", "pradhan mantri awas yojana", "pmay", "ayushman bharat", "pm jay",
		"pm kisan", "pm kisan samman nidhi", "kisan samman", "ujjwala", "ujjwala yojana",
		"swachh bharat", "swachh bharat mission", "digital india", "make in india",
		"skill india", "pmkvy", "startup india", "stand up india", "mudra yojana", "pm mudra",
		"jal jeevan mission", "har ghar jal", "smart cities", "namami gange", "clean ganga",
		"beti bachao beti padhao", "jan dhan yojana", "pmjdy", "mgnrega", "nrega",
		"pm garib kalyan", "one nation one ration", "pm poshan", "mid day meal",
		"atal pension yojana", "apy", "sukanya samriddhi yojana", "pm svanidhi",
		"fasal bima", "crop insurance", "kisan credit card", "kcc", "national health mission",
		"pm suraksha bima", "pmsby", "pm jeevan jyoti", "pmjjby", "national pension scheme",
		"samagra shiksha", "national education policy", "scholarship scheme", "poshan abhiyan",
		"anganwadi", "old age pension", "widow pension", "disability pension",
		"pm gati shakti", "bharatmala", "sagarmala", "vande bharat", "udan scheme",
		"khelo india", "fit india", "pli scheme", "atmanirbhar bharat",
		"government scheme", "central scheme", "ministry announces", "government launches",
		"government hospital", "government school", "railway project", "highway project",
		"ration card", "aadhaar", "government portal", "e-governance",
		"policy announcement", "government policy", "beneficiary", "subsidy",
		"financial assistance", "relief fund", "citizen feedback",
		"ministry of", "department of", "pmo", "niti aayog", "cabinet", "union minister",
		"pib fact check", "government clarifies", "official statement",
	},
	"hi": {
		"पीएम आवास योजना", "प्रधानमंत्री आवास योजना", "आयुष्मान भारत", "पीएम जय",
		"पीएम किसान", "किसान सम्मान निधि", "उज्ज्वला योजना", "स्वच्छ भारत",
		"डिजिटल इंडिया", "मेक इन इंडिया", "स्किल इंडिया", "मुद्रा योजना",
		"जल जीवन मिशन", "हर घर जल", "स्मार्ट सिटी", "नमामि गंगे",
		"बेटी बचाओ बेटी पढ़ाओ", "जन धन योजना", "मनरेगा", "नरेगा",
		"सरकारी योजना", "केंद्रीय योजना", "मंत्रालय घोषणा", "सरकार शुरू",
		"सरकारी अस्पताल", "सरकारी स्कूल", "रेलवे परियोजना", "राशन कार्ड",
		"नीति घोषणा", "सरकारी नीति", "लाभार्थी", "सब्सिडी", "राहत कोष",
	},
	"kn": {"ಸರ್ಕಾರಿ ಯೋಜನೆ", "ಕೇಂದ್ರ ಯೋಜನೆ", "ಸಬ್ಸಿಡಿ", "ಯೋಜನೆ", "ಸರ್ಕಾರ"},
	"ta": {"அரசு திட்டம்", "மத்திய திட்டம்", "மானியம்", "நிதி உதவி"},
	"te": {"ప్రభుత్వ పథకం", "కేంద్ర పథకం", "సబ్సిడీ", "ఆర్థిక సహాయం"},
	"bn": {"সরকারি প্রকল্প", "কেন্দ্রীয় প্রকল্প", "ভর্তুকি", "আর্থিক সহায়তা"},
}

// PoliticalKeywords are per-language terms indicating party/election
// activity rather than government administration.
var PoliticalKeywords = map[string][]string{
	"en": {
		"bjp", "congress", "aap", "tmc", "dmk", "political party", "party leader",
		"election", "voting", "voter turnout", "election results", "exit poll",
		"election campaign", "campaign rally", "election commission", "lok sabha election",
		"assembly election", "rally", "protest march", "political rally", "party convention",
		"mla criticizes", "mp criticizes", "opposition attacks", "political attack",
		"slams", "blasts", "hits out", "takes on", "accuses", "party president",
		"coalition", "alliance partner", "political alliance", "seat sharing",
	},
	"hi": {
		"भाजपा", "कांग्रेस", "आप", "राजनीतिक दल", "पार्टी नेता",
		"चुनाव", "मतदान", "चुनाव परिणाम", "चुनाव प्रचार", "चुनाव रैली", "चुनाव आयोग",
		"रैली", "विरोध मार्च", "राजनीतिक रैली", "विधायक आलोचना", "विपक्ष हमला",
		"निशाना साधा", "हमला बोला", "आरोप लगाया",
	},
}

// EntertainmentKeywords are per-language terms indicating film/celebrity
// content.
var EntertainmentKeywords = map[string][]string{
	"en": {
		"bollywood", "hollywood", "tollywood", "movie", "film", "cinema", "actor",
		"actress", "celebrity", "star", "director", "box office", "trailer", "teaser",
		"song release", "film festival", "award show", "red carpet", "premiere",
		"tv show", "web series", "ott platform", "netflix", "amazon prime", "reality show",
	},
	"hi": {
		"बॉलीवुड", "हॉलीवुड", "फिल्म", "सिनेमा", "मूवी", "अभिनेता", "अभिनेत्री",
		"सेलिब्रिटी", "स्टार", "बॉक्स ऑफिस", "ट्रेलर", "फिल्म फेस्टिवल", "टीवी शो", "मनोरंजन",
	},
}

// SportsKeywords are per-language terms indicating sports content.
var SportsKeywords = map[string][]string{
	"en": {
		"cricket", "football", "hockey", "badminton", "tennis", "kabaddi", "olympics",
		"world cup", "ipl", "test match", "odi", "t20", "player", "team", "match",
		"tournament", "championship", "league", "score", "wicket", "goal", "medal",
		"trophy", "sports", "athlete", "coach", "stadium", "virat kohli", "rohit sharma",
	},
	"hi": {
		"क्रिकेट", "फुटबॉल", "हॉकी", "बैडमिंटन", "टेनिस", "ओलंपिक", "विश्व कप",
		"आईपीएल", "खिलाड़ी", "टीम", "मैच", "टूर्नामेंट", "स्कोर", "पदक", "ट्रॉफी", "खेल",
	},
}

// CrimeAccidentKeywords are per-language terms indicating crime/accident
// content (shown to PIB officers only when a government response is named).
var CrimeAccidentKeywords = map[string][]string{
	"en": {
		"murder", "robbery", "theft", "assault", "kidnapping", "accident", "road accident",
		"train accident", "fire accident", "crime", "criminal", "police case", "fir",
		"arrest", "investigation", "suspect", "victim", "injured", "death",
	},
	"hi": {
		"हत्या", "लूट", "चोरी", "हमला", "अपहरण", "दुर्घटना", "सड़क दुर्घटना",
		"अपराध", "अपराधी", "पुलिस केस", "गिरफ्तारी", "जांच", "पीड़ित", "घायल", "मौत",
	},
}

// BusinessKeywords are per-language terms indicating corporate/market
// content (shown to PIB officers only when government regulation is
// named).
var BusinessKeywords = map[string][]string{
	"en": {
		"company", "startup", "business", "corporate", "ceo", "founder", "investment",
		"funding", "ipo", "stock market", "shares", "profit", "loss", "revenue",
		"merger", "acquisition", "private sector", "industry", "manufacturing",
	},
	"hi": {
		"कंपनी", "स्टार्टअप", "व्यवसाय", "कॉर्पोरेट", "सीईओ", "निवेश", "फंडिंग",
		"आईपीओ", "शेयर बाजार", "लाभ", "हानि", "राजस्व", "विलय", "अधिग्रहण",
	},
}

// StrongExclusionKeywords list phrases for content that is clearly not
// government news regardless of incidental keyword overlap. No stage
// references this list: the confidence scorer's -0.60 strong-exclusion
// penalty keys on InternationalKeywordSets instead.
var StrongExclusionKeywords = []string{
	"box office collection", "trailer launch", "music video release",
	"ipl auction", "world cup final", "cricket score", "film premiere",
	"celebrity wedding", "movie review",
}

// TributeKeywords indicate personal-tribute / condolence content, which the
// early rejector and confidence scorer treat as non-government noise.
var TributeKeywords = []string{
	"condolences", "pays tribute", "birthday wishes", "remembering",
	"death anniversary", "homage to", "tribute to", "mourns the demise",
}
