package domain

// Valores admitidos para los votos de personalidad de un comentario.
var (
	MBTITypes = []string{
		"INFP", "INFJ", "ENFP", "ENFJ",
		"INTJ", "INTP", "ENTP", "ENTJ",
		"ISFP", "ISFJ", "ESFP", "ESFJ",
		"ISTP", "ISTJ", "ESTP", "ESTJ",
	}

	EnneagramTypes = []string{
		"1w2", "1w9", "2w1", "2w3", "3w2", "3w4",
		"4w3", "4w5", "5w4", "5w6", "6w5", "6w7",
		"7w6", "7w8", "8w7", "8w9", "9w8", "9w1",
	}

	ZodiacTypes = []string{
		"Aries", "Taurus", "Gemini", "Cancer",
		"Leo", "Virgo", "Libra", "Scorpio",
		"Sagittarius", "Capricorn", "Aquarius", "Pisces",
	}
)

var (
	mbtiSet      = tokenSet(MBTITypes)
	enneagramSet = tokenSet(EnneagramTypes)
	zodiacSet    = tokenSet(ZodiacTypes)
)

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// IsValidMBTIVote reporta si v pertenece a la enumeración MBTI.
func IsValidMBTIVote(v string) bool {
	_, ok := mbtiSet[v]
	return ok
}

// IsValidEnneagramVote reporta si v pertenece a la enumeración de alas
// de eneagrama.
func IsValidEnneagramVote(v string) bool {
	_, ok := enneagramSet[v]
	return ok
}

// IsValidZodiacVote reporta si v pertenece a la enumeración zodiacal.
func IsValidZodiacVote(v string) bool {
	_, ok := zodiacSet[v]
	return ok
}
