package extract

// Canonical UK census ethnicity phrases; a labelled capture containing one of
// these (in order) normalizes to it.
var ukEthnicities = []string{
	"white british", "white english", "white scottish", "white welsh", "white irish",
	"black caribbean", "black african", "black british",
	"asian indian", "asian pakistani", "asian bangladeshi", "asian chinese",
	"mixed white and black caribbean", "mixed white and black african",
	"mixed white and asian", "mixed other",
}

var disabilityVocabulary = []string{
	"autism",
	"adhd",
	"cerebral palsy",
	"down syndrome",
	"epilepsy",
	"hearing impairment",
	"visual impairment",
	"physical disability",
	"learning disability",
	"mental health",
	"developmental delay",
}

var supportVocabulary = []string{
	"therapy",
	"counselling",
	"social work",
	"mental health support",
	"educational support",
	"medical support",
	"speech therapy",
	"occupational therapy",
	"physiotherapy",
}

var medicalVocabulary = []string{
	"medication",
	"medical condition",
	"hospital",
	"doctor",
	"treatment",
	"therapy",
	"chronic condition",
	"health condition",
}

var educationalVocabulary = []string{
	"special school",
	"mainstream school",
	"home schooling",
	"tutoring",
	"educational support",
	"sen support",
	"school transport",
}

// Cities recognised by the location preference/exclusion scan.
var ukCities = []string{
	"london", "manchester", "birmingham", "leeds", "glasgow", "liverpool",
	"edinburgh", "bristol", "cardiff", "belfast", "newcastle", "sheffield",
	"nottingham", "brighton", "cambridge", "oxford", "york", "bath",
}
