package gazetteer

// CityToState maps major Indian city names (lowercase) to their state/UT.
// Ported from the source system's geographic classifier.
var CityToState = map[string]string{
	"bangalore": "Karnataka", "bengaluru": "Karnataka", "mysore": "Karnataka", "mangalore": "Karnataka",
	"hubli": "Karnataka", "belgaum": "Karnataka",

	"mumbai": "Maharashtra", "pune": "Maharashtra", "nagpur": "Maharashtra", "thane": "Maharashtra",
	"nashik": "Maharashtra", "aurangabad": "Maharashtra",

	"chennai": "Tamil Nadu", "coimbatore": "Tamil Nadu", "madurai": "Tamil Nadu",
	"tiruchirappalli": "Tamil Nadu", "salem": "Tamil Nadu", "vellore": "Tamil Nadu",

	"delhi": "Delhi", "new delhi": "Delhi",

	"kolkata": "West Bengal", "howrah": "West Bengal", "durgapur": "West Bengal",
	"siliguri": "West Bengal",

	"ahmedabad": "Gujarat", "surat": "Gujarat", "vadodara": "Gujarat", "rajkot": "Gujarat",
	"gandhinagar": "Gujarat",

	"jaipur": "Rajasthan", "jodhpur": "Rajasthan", "udaipur": "Rajasthan", "kota": "Rajasthan",

	"lucknow": "Uttar Pradesh", "kanpur": "Uttar Pradesh", "agra": "Uttar Pradesh",
	"varanasi": "Uttar Pradesh", "noida": "Uttar Pradesh", "ghaziabad": "Uttar Pradesh",

	"bhopal": "Madhya Pradesh", "indore": "Madhya Pradesh", "gwalior": "Madhya Pradesh",

	"patna": "Bihar", "gaya": "Bihar", "bhagalpur": "Bihar",

	"hyderabad": "Telangana", "warangal": "Telangana",

	"visakhapatnam": "Andhra Pradesh", "vijayawada": "Andhra Pradesh", "guntur": "Andhra Pradesh",

	"thiruvananthapuram": "Kerala", "kochi": "Kerala", "kozhikode": "Kerala", "thrissur": "Kerala",

	"bhubaneswar": "Odisha", "cuttack": "Odisha", "rourkela": "Odisha",

	"chandigarh": "Punjab", "ludhiana": "Punjab", "amritsar": "Punjab", "jalandhar": "Punjab",

	"faridabad": "Haryana", "gurugram": "Haryana", "gurgaon": "Haryana", "panipat": "Haryana",

	"ranchi": "Jharkhand", "jamshedpur": "Jharkhand", "dhanbad": "Jharkhand",

	"guwahati": "Assam", "silchar": "Assam",

	"dehradun": "Uttarakhand", "haridwar": "Uttarakhand",

	"shimla": "Himachal Pradesh", "dharamshala": "Himachal Pradesh",

	"srinagar": "Jammu and Kashmir", "jammu": "Jammu and Kashmir",

	"panaji": "Goa", "margao": "Goa",

	"raipur": "Chhattisgarh", "bhilai": "Chhattisgarh",
}

// StateVariations maps alternate spellings/transliterations of state names
// to the canonical state name.
var StateVariations = map[string]string{
	"karnataka": "Karnataka", "maharashtra": "Maharashtra", "tamil nadu": "Tamil Nadu",
	"tamilnadu": "Tamil Nadu", "delhi": "Delhi", "west bengal": "West Bengal",
	"gujarat": "Gujarat", "rajasthan": "Rajasthan", "uttar pradesh": "Uttar Pradesh",
	"madhya pradesh": "Madhya Pradesh", "bihar": "Bihar", "telangana": "Telangana",
	"andhra pradesh": "Andhra Pradesh", "kerala": "Kerala", "odisha": "Odisha",
	"orissa": "Odisha", "punjab": "Punjab", "haryana": "Haryana",
	"jharkhand": "Jharkhand", "assam": "Assam",
}
