package gazetteer

// InternationalKeywordSets groups foreign-country/foreign-leader keyword
// lists keyed by bloc name, used by the early rejector's international
// filter. Ported from the source system's strict "PIB officers only need
// Central Government schemes within India" filter.
var InternationalKeywordSets = map[string][]string{
	"bangladesh": {
		"bangladesh", "dhaka", "sheikh hasina", "khaleda zia", "rohingya",
		"chittagong", "awami league",
	},
	"pakistan": {
		"pakistan", "islamabad", "imran khan", "nawaz sharif", "shehbaz sharif",
		"karachi", "lahore",
	},
	"sri_lanka": {
		"sri lanka", "colombo", "gotabaya", "mahinda rajapaksa",
	},
	"other_neighbors": {
		"nepal", "kathmandu", "bhutan", "thimphu", "myanmar", "yangon",
		"afghanistan", "kabul", "taliban",
	},
	"foreign_powers": {
		"russia ukraine", "israel palestine", "gaza", "west bank", "china taiwan",
		"north korea", "iran nuclear", "syria war", "ukraine", "zelensky", "putin",
		"israel", "hamas", "netanyahu",
	},
	"foreign_leaders": {
		"donald trump", "joe biden", "xi jinping", "erdogan", "macron",
		"justin trudeau", "kim jong",
	},
}

// IndianGovernmentMarkers are the terms that, when present alongside an
// international keyword, signal the article is actually about India's
// relationship with or response to that country — an exception to the
// international-rejection rule.
var IndianGovernmentMarkers = []string{
	"indian government", "mea", "external affairs", "ministry", "pm modi",
	"indian pm", "government scheme", "bilateral",
}
