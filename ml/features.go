package ml

// FeatureCount is the length of every vector the models accept.
const FeatureCount = 5

// FeatureNames lists the model inputs in the order the artifacts were trained
// on: initial void ratio, natural water content, liquid limit, plastic limit,
// plasticity index.
func FeatureNames() []string {
	return []string{
		"eo",
		"wn",
		"LL",
		"PL",
		"PI",
	}
}

func sameFeatureNames(names []string) bool {
	expected := FeatureNames()
	if len(names) != len(expected) {
		return false
	}
	for i := range expected {
		if names[i] != expected[i] {
			return false
		}
	}
	return true
}
