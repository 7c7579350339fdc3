package models

// annualization factors, periods per year
const (
	Daily     = 252
	Weekly    = 52
	Monthly   = 12
	Quarterly = 4
	Yearly    = 1
)

func ConvertFrequencyToString(inp int) string {
	switch inp {
	case Daily:
		return "days"
	case Weekly:
		return "weeks"
	case Monthly:
		return "months"
	case Quarterly:
		return "quarters"
	case Yearly:
		return "years"
	default:
		return ""
	}
}

// GetFrequencies maps the frequency labels to their annualization factors
func GetFrequencies() map[string]int {
	frequencies := make(map[string]int, 5)
	for _, f := range []int{Daily, Weekly, Monthly, Quarterly, Yearly} {
		frequencies[ConvertFrequencyToString(f)] = f
	}
	return frequencies
}
