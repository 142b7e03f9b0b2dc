package game

// Feature-to-phrase tables for explanation clauses. New features or values
// extend these maps without touching the generator.

// morphFeatureOrder fixes the clause order in explanations.
var morphFeatureOrder = []string{"Case", "Aspect", "Voice"}

// morphPhrases maps (morphological feature, value) to a Filipino clause.
var morphPhrases = map[string]map[string]string{
	"Case": {
		"Nom": "Nasa anyong palagyo ito.",
		"Gen": "Nasa anyong paari ito.",
		"Dat": "Nasa anyong palayon ito.",
	},
	"Aspect": {
		"Imp":  "Ang aspekto ng kilos ay pangkasalukuyan.",
		"Perf": "Ang aspekto ng kilos ay perpektibo (tapos na).",
		"Prog": "Ang aspekto ng kilos ay imperpektibo (nagpapatuloy).",
		"Hab":  "Ang aspekto ng kilos ay nakagawian.",
	},
	"Voice": {
		"Act":  "Ang pokus ng pandiwa ay sa aktor.",
		"Pass": "Ang pokus ng pandiwa ay sa layon.",
		"AV":   "Ang pokus ng pandiwa ay sa aktor.",
		"PV":   "Ang pokus ng pandiwa ay sa layon.",
		"LV":   "Ang pokus ng pandiwa ay sa lokasyon.",
	},
}

// depPhrases maps a dependency role to a Filipino clause describing the
// token's function in the sentence.
var depPhrases = map[string]string{
	"root":  "Ito ang pangunahing salita ng pangungusap.",
	"nsubj": "Ito ang paksa ng pangungusap.",
	"obj":   "Ito ang layon ng pandiwa.",
	"iobj":  "Ito ang di-tuwirang layon ng pandiwa.",
	"obl":   "Nagbibigay ito ng karagdagang detalye sa kilos.",
}

// Sentence-usage feedback templates, keyed by the failing check or, on
// success, by the target token's dependency role.
const (
	feedbackModelUnavailable = "Hindi magamit ang NLP model. Paki-refresh ang page at subukan ulit."
	feedbackTooShort         = "Masyadong maikli ang pangungusap. Gumawa ng kompletong pangungusap."
	feedbackWordMissingFmt   = "Hindi mo ginamit ang salitang '%s' sa iyong pangungusap."
	feedbackNoVerb           = "Kulang ang pangungusap ng pandiwa (verb)."
	feedbackNoNoun           = "Kulang ang pangungusap ng pangngalan (noun)."
	feedbackNotIntegrated    = "Parang hindi konektado ang salita sa iba pang bahagi ng pangungusap. Subukan muli."
	feedbackGenericFail      = "Hindi sapat ang pagkakabuo ng pangungusap."
)

// successFeedback picks the congratulatory phrasing for the target token's
// dependency role.
func successFeedback(dep string) string {
	switch dep {
	case "root":
		return "Mahusay! Ginamit mo ang salita bilang pangunahing salita ng pangungusap."
	case "nsubj":
		return "Mahusay! Ginamit mo ang salita bilang paksa ng pangungusap."
	case "obj", "iobj":
		return "Mahusay! Ginamit mo ang salita bilang layon ng pangungusap."
	default:
		return "Mahusay! Tama ang paggamit mo ng salita sa pangungusap."
	}
}
