package gazetteer

import "github.com/prajwalm-hub/newsscope/internal/models"

// Schemes is a curated subset of the central-government scheme reference
// data: canonical name, owning ministry, and per-language regional aliases.
// Ported from the source system's scheme database, trimmed to the
// highest-profile programs — the full list runs past two hundred entries;
// this set covers the schemes referenced throughout the rest of the
// pipeline's test fixtures and keyword dictionaries.
var Schemes = []models.Scheme{
	{
		CanonicalName:  "PM-KISAN",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Income support to landholding farmer families",
		Tags:           []string{"Agriculture", "Farmers", "Income Support"},
		EnglishAliases: []string{"pm kisan", "pm-kisan", "pradhan mantri kisan samman nidhi", "kisan samman nidhi"},
		RegionalAliases: map[string][]string{
			"hi": {"पीएम किसान", "प्रधानमंत्री किसान सम्मान निधि", "किसान सम्मान निधि"},
			"kn": {"ಪಿಎಂ ಕಿಸಾನ್"},
			"ta": {"பிஎம் கிசான்"},
			"te": {"పిఎమ్ కిసాన్"},
		},
	},
	{
		CanonicalName:  "Ayushman Bharat",
		Ministry:       "Ministry of Health & Family Welfare",
		Description:    "Health insurance coverage for secondary and tertiary care hospitalization",
		Tags:           []string{"Health", "Insurance"},
		EnglishAliases: []string{"ayushman bharat", "pm-jay", "pm jay", "ayushman yojana"},
		RegionalAliases: map[string][]string{
			"hi": {"आयुष्मान भारत", "पीएम जय", "आयुष्मान योजना"},
			"kn": {"ಆಯುಷ್ಮಾನ್ ಭಾರತ್"},
			"ta": {"ஆயுஷ்மான் பாரத்"},
			"te": {"ఆయుష్మాన్ భారత్"},
		},
	},
	{
		CanonicalName:  "Pradhan Mantri Ujjwala Yojana",
		Ministry:       "Ministry of Petroleum and Natural Gas",
		Description:    "LPG connections to women from below-poverty-line households",
		Tags:           []string{"LPG", "Women Empowerment"},
		EnglishAliases: []string{"ujjwala yojana", "pm ujjwala", "ujjwala scheme"},
		RegionalAliases: map[string][]string{
			"hi": {"उज्ज्वला योजना", "प्रधानमंत्री उज्ज्वला योजना"},
		},
	},
	{
		CanonicalName:  "Pradhan Mantri Awas Yojana",
		Ministry:       "Ministry of Housing and Urban Affairs",
		Description:    "Affordable housing for urban and rural poor",
		Tags:           []string{"Housing", "Urban Development", "Rural Development"},
		EnglishAliases: []string{"pmay", "pm awas yojana", "pradhan mantri awas yojana"},
		RegionalAliases: map[string][]string{
			"hi": {"प्रधानमंत्री आवास योजना", "पीएम आवास"},
		},
	},
	{
		CanonicalName:  "Jal Jeevan Mission",
		Ministry:       "Ministry of Jal Shakti",
		Description:    "Functional household tap connections to every rural household",
		Tags:           []string{"Water Supply", "Rural Development"},
		EnglishAliases: []string{"jal jeevan mission", "har ghar jal"},
		RegionalAliases: map[string][]string{
			"hi": {"जल जीवन मिशन", "हर घर जल"},
		},
	},
	{
		CanonicalName:  "Pradhan Mantri Mudra Yojana",
		Ministry:       "Ministry of Finance",
		Description:    "Collateral-free loans to non-corporate, non-farm micro enterprises",
		Tags:           []string{"MSME", "Loans", "Entrepreneurship"},
		EnglishAliases: []string{"mudra yojana", "pm mudra", "pmmy"},
		RegionalAliases: map[string][]string{
			"hi": {"मुद्रा योजना", "पीएम मुद्रा"},
		},
	},
	{
		CanonicalName:  "Digital India",
		Ministry:       "Ministry of Electronics and Information Technology",
		Description:    "Digital infrastructure and e-governance initiative",
		Tags:           []string{"Digital Infrastructure", "e-Governance"},
		EnglishAliases: []string{"digital india"},
		RegionalAliases: map[string][]string{
			"hi": {"डिजिटल इंडिया"},
		},
	},
	{
		CanonicalName:  "Swachh Bharat Mission",
		Ministry:       "Ministry of Jal Shakti",
		Description:    "National sanitation and cleanliness campaign",
		Tags:           []string{"Sanitation", "Public Health"},
		EnglishAliases: []string{"swachh bharat", "swachh bharat mission"},
		RegionalAliases: map[string][]string{
			"hi": {"स्वच्छ भारत", "स्वच्छ भारत मिशन"},
		},
	},
	{
		CanonicalName:  "Make In India",
		Ministry:       "Ministry of Commerce and Industry",
		Description:    "Manufacturing and investment promotion initiative",
		Tags:           []string{"Manufacturing", "Investment"},
		EnglishAliases: []string{"make in india"},
		RegionalAliases: map[string][]string{
			"hi": {"मेक इन इंडिया"},
		},
	},
	{
		CanonicalName:  "Startup India",
		Ministry:       "Department for Promotion of Industry and Internal Trade",
		Description:    "Startup ecosystem promotion initiative",
		Tags:           []string{"Entrepreneurship", "Startups"},
		EnglishAliases: []string{"startup india"},
	},
	{
		CanonicalName:  "Skill India Mission",
		Ministry:       "Ministry of Skill Development and Entrepreneurship",
		Description:    "Vocational training and skill certification initiative",
		Tags:           []string{"Skill Development"},
		EnglishAliases: []string{"skill india", "pmkvy", "pradhan mantri kaushal vikas yojana"},
		RegionalAliases: map[string][]string{
			"hi": {"स्किल इंडिया", "कौशल विकास"},
		},
	},
	{
		CanonicalName:  "Pradhan Mantri Jan Dhan Yojana",
		Ministry:       "Ministry of Finance",
		Description:    "Financial inclusion and universal bank account access",
		Tags:           []string{"Financial Inclusion"},
		EnglishAliases: []string{"jan dhan yojana", "pmjdy", "jan dhan"},
		RegionalAliases: map[string][]string{
			"hi": {"जन धन योजना"},
		},
	},
	{
		CanonicalName:  "MGNREGA",
		Ministry:       "Ministry of Rural Development",
		Description:    "Guaranteed rural wage employment scheme",
		Tags:           []string{"Rural Employment"},
		EnglishAliases: []string{"mgnrega", "nrega", "mahatma gandhi nrega"},
		RegionalAliases: map[string][]string{
			"hi": {"मनरेगा", "नरेगा", "महात्मा गांधी नरेगा"},
		},
	},
	{
		CanonicalName:  "National Health Mission",
		Ministry:       "Ministry of Health & Family Welfare",
		Description:    "Universal access to equitable, affordable healthcare",
		Tags:           []string{"Health"},
		EnglishAliases: []string{"national health mission", "nhm"},
	},
	{
		CanonicalName:  "Beti Bachao Beti Padhao",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "Girl child protection and education campaign",
		Tags:           []string{"Women & Child"},
		EnglishAliases: []string{"beti bachao beti padhao"},
		RegionalAliases: map[string][]string{
			"hi": {"बेटी बचाओ बेटी पढ़ाओ"},
		},
	},
	{
		CanonicalName:  "Namami Gange Programme",
		Ministry:       "Ministry of Jal Shakti",
		Description:    "River Ganga rejuvenation and pollution abatement",
		Tags:           []string{"Environment", "Water"},
		EnglishAliases: []string{"namami gange", "clean ganga"},
		RegionalAliases: map[string][]string{
			"hi": {"नमामि गंगे", "स्वच्छ गंगा"},
		},
	},
	{
		CanonicalName:  "Smart Cities Mission",
		Ministry:       "Ministry of Housing and Urban Affairs",
		Description:    "Urban infrastructure modernization programme",
		Tags:           []string{"Urban Development", "Infrastructure"},
		EnglishAliases: []string{"smart cities mission", "smart city"},
	},
	{
		CanonicalName:  "Pradhan Mantri Fasal Bima Yojana",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Crop insurance scheme against yield loss",
		Tags:           []string{"Agriculture", "Insurance"},
		EnglishAliases: []string{"fasal bima yojana", "crop insurance", "pm fasal bima"},
		RegionalAliases: map[string][]string{
			"hi": {"फसल बीमा योजना"},
		},
	},
	{
		CanonicalName:  "Atal Pension Yojana",
		Ministry:       "Ministry of Finance",
		Description:    "Pension scheme targeted at unorganized-sector workers",
		Tags:           []string{"Pension", "Social Security"},
		EnglishAliases: []string{"atal pension yojana", "apy"},
	},
	{
		CanonicalName:  "Khelo India",
		Ministry:       "Ministry of Youth Affairs and Sports",
		Description:    "Sports talent development and athlete support programme",
		Tags:           []string{"Sports"},
		EnglishAliases: []string{"khelo india"},
		RegionalAliases: map[string][]string{
			"hi": {"खेलो इंडिया"},
		},
	},
	{
		CanonicalName:  "Stand Up India",
		Ministry:       "Ministry of Finance",
		Description:    "Bank loans for SC/ST and women entrepreneurs",
		Tags:           []string{"Entrepreneurship", "SC/ST", "Women"},
		EnglishAliases: []string{"stand up india"},
	},
	{
		CanonicalName:  "PMEGP",
		Ministry:       "Ministry of Micro, Small and Medium Enterprises",
		Description:    "Credit-linked subsidy programme for self-employment generation",
		Tags:           []string{"Self Employment", "MSME"},
		EnglishAliases: []string{"pmegp", "prime minister's employment generation programme"},
	},
	{
		CanonicalName:  "National Rural Livelihood Mission",
		Ministry:       "Ministry of Rural Development",
		Description:    "Institutional platforms and self-help groups for the rural poor",
		Tags:           []string{"Rural Livelihood", "Poverty Alleviation"},
		EnglishAliases: []string{"nrlm", "national rural livelihood mission", "ajeevika mission"},
	},
	{
		CanonicalName:  "Pradhan Mantri Matru Vandana Yojana",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "Maternity benefit cash incentive for pregnant and lactating women",
		Tags:           []string{"Maternity", "Women Welfare"},
		EnglishAliases: []string{"pmmvy", "matru vandana yojana"},
	},
	{
		CanonicalName:  "Mid-Day Meal Scheme",
		Ministry:       "Ministry of Education",
		Description:    "Free lunch for children in government and government-aided schools",
		Tags:           []string{"Child Nutrition", "Education"},
		EnglishAliases: []string{"mid-day meal scheme", "mid day meal"},
	},
	{
		CanonicalName:  "National Social Assistance Programme",
		Ministry:       "Ministry of Rural Development",
		Description:    "Pension-based social security for elderly, widows, and disabled persons",
		Tags:           []string{"Social Security", "Pension"},
		EnglishAliases: []string{"nsap", "national social assistance programme"},
	},
	{
		CanonicalName:  "Pradhan Mantri Suraksha Bima Yojana",
		Ministry:       "Ministry of Finance",
		Description:    "Low-premium accidental insurance cover",
		Tags:           []string{"Insurance"},
		EnglishAliases: []string{"pmsby", "suraksha bima yojana"},
	},
	{
		CanonicalName:  "Pradhan Mantri Jeevan Jyoti Bima Yojana",
		Ministry:       "Ministry of Finance",
		Description:    "Low-premium life insurance cover",
		Tags:           []string{"Life Insurance"},
		EnglishAliases: []string{"pmjjby", "jeevan jyoti bima yojana"},
	},
	{
		CanonicalName:  "Saubhagya Yojana",
		Ministry:       "Ministry of Power",
		Description:    "Universal household electrification scheme",
		Tags:           []string{"Electrification"},
		EnglishAliases: []string{"saubhagya yojana", "sahaj bijli har ghar yojana"},
	},
	{
		CanonicalName:  "UDAN",
		Ministry:       "Ministry of Civil Aviation",
		Description:    "Regional air connectivity affordability scheme",
		Tags:           []string{"Aviation", "Regional Connectivity"},
		EnglishAliases: []string{"udan", "ude desh ka aam naagrik"},
	},
	{
		CanonicalName:  "AMRUT",
		Ministry:       "Ministry of Housing and Urban Affairs",
		Description:    "Basic urban infrastructure and service-delivery mission",
		Tags:           []string{"Urban Infrastructure", "Water Supply"},
		EnglishAliases: []string{"amrut", "atal mission for rejuvenation and urban transformation"},
	},
	{
		CanonicalName:  "National Infrastructure Pipeline",
		Ministry:       "Ministry of Finance",
		Description:    "Multi-year infrastructure investment pipeline",
		Tags:           []string{"Infrastructure", "Investment"},
		EnglishAliases: []string{"national infrastructure pipeline", "nip"},
	},
	{
		CanonicalName:  "National Apprenticeship Promotion Scheme",
		Ministry:       "Ministry of Skill Development and Entrepreneurship",
		Description:    "Incentivizes apprenticeship training and industry engagement",
		Tags:           []string{"Apprenticeship", "Employment"},
		EnglishAliases: []string{"national apprenticeship promotion scheme", "naps"},
	},
	{
		CanonicalName:  "PM SVANidhi",
		Ministry:       "Ministry of Housing and Urban Affairs",
		Description:    "Micro-credit scheme for street vendors",
		Tags:           []string{"Street Vendors", "Credit"},
		EnglishAliases: []string{"pm svanidhi", "svanidhi"},
	},
	{
		CanonicalName:  "Ayushman Bharat Health and Wellness Centres",
		Ministry:       "Ministry of Health & Family Welfare",
		Description:    "Upgrades sub-centres into comprehensive primary-care facilities",
		Tags:           []string{"Primary Healthcare"},
		EnglishAliases: []string{"health and wellness centres", "ayushman bharat hwc"},
	},
	{
		CanonicalName:  "Poshan Abhiyaan",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "National mission to reduce malnutrition",
		Tags:           []string{"Nutrition", "Child Health"},
		EnglishAliases: []string{"poshan abhiyaan", "national nutrition mission"},
		RegionalAliases: map[string][]string{
			"hi": {"पोषण अभियान"},
		},
	},
	{
		CanonicalName:  "National Food Security Mission",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Raises production of rice, wheat, pulses, and coarse cereals",
		Tags:           []string{"Food Security", "Agriculture"},
		EnglishAliases: []string{"national food security mission", "nfsm"},
	},
	{
		CanonicalName:  "Paramparagat Krishi Vikas Yojana",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Promotes organic farming and soil-health management",
		Tags:           []string{"Organic Farming", "Agriculture"},
		EnglishAliases: []string{"paramparagat krishi vikas yojana", "pkvy"},
	},
	{
		CanonicalName:  "Pradhan Mantri Krishi Sinchai Yojana",
		Ministry:       "Ministry of Jal Shakti",
		Description:    "Expands assured irrigation and improves water-use efficiency",
		Tags:           []string{"Irrigation", "Agriculture"},
		EnglishAliases: []string{"pmksy", "krishi sinchai yojana"},
	},
	{
		CanonicalName:  "e-NAM",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Pan-India electronic trading portal for agricultural commodities",
		Tags:           []string{"Agricultural Marketing", "Digital Platform"},
		EnglishAliases: []string{"e-nam", "national agriculture market"},
	},
	{
		CanonicalName:  "Kisan Credit Card",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Timely credit support for agriculture and allied activities",
		Tags:           []string{"Agricultural Credit"},
		EnglishAliases: []string{"kisan credit card", "kcc"},
	},
	{
		CanonicalName:  "Soil Health Card Scheme",
		Ministry:       "Ministry of Agriculture and Farmers Welfare",
		Description:    "Soil nutrient status reporting for judicious fertilizer use",
		Tags:           []string{"Soil Health", "Agriculture"},
		EnglishAliases: []string{"soil health card", "soil health card scheme"},
	},
	{
		CanonicalName:  "PM-KUSUM",
		Ministry:       "Ministry of New and Renewable Energy",
		Description:    "Solar pumps and grid-connected solar power for farmers",
		Tags:           []string{"Solar Energy", "Agriculture"},
		EnglishAliases: []string{"pm-kusum", "kisan urja suraksha evam utthaan mahabhiyan"},
	},
	{
		CanonicalName:  "National Livestock Mission",
		Ministry:       "Ministry of Fisheries, Animal Husbandry and Dairying",
		Description:    "Sustainable development of the livestock sector",
		Tags:           []string{"Livestock", "Animal Husbandry"},
		EnglishAliases: []string{"national livestock mission"},
	},
	{
		CanonicalName:  "Pradhan Mantri Matsya Sampada Yojana",
		Ministry:       "Ministry of Fisheries, Animal Husbandry and Dairying",
		Description:    "Sustainable development of the fisheries sector",
		Tags:           []string{"Fisheries", "Blue Revolution"},
		EnglishAliases: []string{"pmmsy", "matsya sampada yojana"},
	},
	{
		CanonicalName:  "One Nation One Ration Card",
		Ministry:       "Ministry of Consumer Affairs, Food and Public Distribution",
		Description:    "Portability of ration card benefits across states",
		Tags:           []string{"Food Security", "PDS"},
		EnglishAliases: []string{"one nation one ration card", "onorc"},
	},
	{
		CanonicalName:  "National Clean Air Programme",
		Ministry:       "Ministry of Environment, Forest and Climate Change",
		Description:    "Reduces particulate air pollution across Indian cities",
		Tags:           []string{"Air Pollution", "Environment"},
		EnglishAliases: []string{"ncap", "national clean air programme"},
	},
	{
		CanonicalName:  "Green India Mission",
		Ministry:       "Ministry of Environment, Forest and Climate Change",
		Description:    "Increases forest and tree cover nationally",
		Tags:           []string{"Afforestation", "Climate Change"},
		EnglishAliases: []string{"green india mission"},
	},
	{
		CanonicalName:  "National Solar Mission",
		Ministry:       "Ministry of New and Renewable Energy",
		Description:    "Promotes solar power generation capacity",
		Tags:           []string{"Solar Power", "Renewable Energy"},
		EnglishAliases: []string{"national solar mission", "jawaharlal nehru national solar mission"},
	},
	{
		CanonicalName:  "Production Linked Incentive Scheme",
		Ministry:       "Multiple Ministries",
		Description:    "Manufacturing-output incentives across targeted sectors",
		Tags:           []string{"Manufacturing", "Incentives"},
		EnglishAliases: []string{"pli scheme", "production linked incentive"},
	},
	{
		CanonicalName:  "Atmanirbhar Bharat Rozgar Yojana",
		Ministry:       "Ministry of Labour and Employment",
		Description:    "Employer incentives for new formal-sector job creation",
		Tags:           []string{"Employment", "EPFO"},
		EnglishAliases: []string{"atmanirbhar bharat rozgar yojana", "abrey"},
	},
	{
		CanonicalName:  "e-Shram Portal",
		Ministry:       "Ministry of Labour and Employment",
		Description:    "National database of unorganised-sector workers",
		Tags:           []string{"Unorganised Workers", "Database"},
		EnglishAliases: []string{"e-shram", "e-shram portal"},
	},
	{
		CanonicalName:  "PM CARES Fund",
		Ministry:       "Prime Minister's Office",
		Description:    "Public charitable trust for emergency and distress relief",
		Tags:           []string{"Disaster Relief", "Emergency Response"},
		EnglishAliases: []string{"pm cares fund", "pm cares"},
	},
	{
		CanonicalName:  "Ayushman Bharat Digital Mission",
		Ministry:       "Ministry of Health & Family Welfare",
		Description:    "Digital health ecosystem with unique health IDs",
		Tags:           []string{"Digital Health"},
		EnglishAliases: []string{"ayushman bharat digital mission", "abdm"},
	},
	{
		CanonicalName:  "PM-WANI",
		Ministry:       "Ministry of Communications",
		Description:    "Framework for public Wi-Fi hotspot access points",
		Tags:           []string{"Digital Connectivity"},
		EnglishAliases: []string{"pm-wani", "wifi access network interface"},
	},
	{
		CanonicalName:  "BharatNet",
		Ministry:       "Ministry of Communications",
		Description:    "Broadband connectivity to every gram panchayat",
		Tags:           []string{"Broadband", "Rural Connectivity"},
		EnglishAliases: []string{"bharatnet"},
	},
	{
		CanonicalName:  "FAME India",
		Ministry:       "Ministry of Heavy Industries",
		Description:    "Faster adoption of electric and hybrid vehicle technologies",
		Tags:           []string{"Electric Vehicles", "Clean Transport"},
		EnglishAliases: []string{"fame india", "faster adoption of manufacturing of electric vehicles"},
	},
	{
		CanonicalName:  "Jal Shakti Abhiyan",
		Ministry:       "Ministry of Jal Shakti",
		Description:    "Campaign for water conservation and security",
		Tags:           []string{"Water Conservation"},
		EnglishAliases: []string{"jal shakti abhiyan"},
	},
	{
		CanonicalName:  "Mission Shakti",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "Umbrella scheme for women's safety and empowerment",
		Tags:           []string{"Women Safety", "Empowerment"},
		EnglishAliases: []string{"mission shakti"},
	},
	{
		CanonicalName:  "Nirbhaya Fund",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "Funds initiatives addressing women's safety",
		Tags:           []string{"Women Safety"},
		EnglishAliases: []string{"nirbhaya fund"},
	},
	{
		CanonicalName:  "Integrated Child Development Services",
		Ministry:       "Ministry of Women and Child Development",
		Description:    "Nutrition, health, and pre-school education for children under six",
		Tags:           []string{"Child Development", "Nutrition"},
		EnglishAliases: []string{"icds", "integrated child development services"},
	},
}

// TrustedGovSources is the set of domains treated as trusted government
// sources for C8/C11 scoring.
var TrustedGovSources = []string{
	"pib.gov.in",
	"pmindia.gov.in",
	"mea.gov.in",
	"mygov.in",
	"india.gov.in",
	"meity.gov.in",
	"mohfw.gov.in",
	"pmkisan.gov.in",
	"prasarbharati.gov.in",
	"ddnews.gov.in",
	"airindia.gov.in",
	"niti.gov.in",
	"cabsec.gov.in",
}
