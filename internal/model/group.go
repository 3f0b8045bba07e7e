package model

// Groups — закрытый набор учебных групп колледжа.
// Коды сравниваются строго по точному совпадению строк.
var Groups = []string{"11Т", "21Т", "31Т"}

// IsValidGroup проверяет, входит ли код в набор групп
func IsValidGroup(code string) bool {
	for _, g := range Groups {
		if g == code {
			return true
		}
	}
	return false
}
