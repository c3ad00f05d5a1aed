package service

func intPtr(v int) *int { return &v }

// Datos iniciales de perfiles para instalaciones vacías.
var seedProfiles = []ProfileInput{
	{
		Name:         "Elon Reeve Musk",
		Description:  "Elon Reeve Musk FRS (born June 28, 1971) is a technology entrepreneur, investor, and engineer. He holds South African, Canadian, and U.S. citizenship and is the founder, CEO, and lead designer of SpaceX; co-founder, CEO, and product architect of Tesla, Inc.; co-founder and CEO of Neuralink; founder of The Boring Company; co-founder and co-chairman of OpenAI; and co-founder of PayPal.",
		MBTI:         "ISFJ",
		Enneagram:    "9w3",
		Variant:      "sp/so",
		Tritype:      intPtr(725),
		Socionics:    "SEE",
		Sloan:        "RCOEN",
		Psyche:       "FEVL",
		Temperaments: "Phlegmatic [Dominant]",
		ProfileTags:  []string{"Business", "Technology"},
		Image:        "https://upload.wikimedia.org/wikipedia/commons/thumb/3/34/Elon_Musk_Royal_Society_%28crop2%29.jpg/440px-Elon_Musk_Royal_Society_%28crop2%29.jpg",
	},
	{
		Name:         "Alan Turing",
		Description:  "Alan Mathison Turing OBE FRS (23 June 1912 – 7 June 1954) was an English mathematician, computer scientist, logician, cryptanalyst, philosopher, and theoretical biologist. He was highly influential in the development of theoretical computer science, providing a formalisation of the concepts of algorithm and computation with the Turing machine, which can be considered a model of a general-purpose computer.",
		MBTI:         "INTP",
		Enneagram:    "5w6",
		Variant:      "so/sp",
		Tritype:      intPtr(513),
		Socionics:    "LII",
		Sloan:        "RCOEI",
		Psyche:       "LVEF",
		Temperaments: "Melancholic-Phlegmatic",
		ProfileTags:  []string{"Science", "Math", "Technology"},
		Image:        "https://upload.wikimedia.org/wikipedia/commons/thumb/a/a1/Alan_Turing_Aged_16.jpg/440px-Alan_Turing_Aged_16.jpg",
	},
	{
		Name:         "Marie Curie",
		Description:  "Marie Salomea Skłodowska-Curie (7 November 1867 – 4 July 1934) was a Polish and naturalized-French physicist and chemist who conducted pioneering research on radioactivity. She was the first woman to win a Nobel Prize, the first person and the only woman to win the Nobel Prize twice, and the only person to win the Nobel Prize in two different scientific fields.",
		MBTI:         "INTJ",
		Enneagram:    "5w4",
		Variant:      "sp/sx",
		Tritype:      intPtr(514),
		Socionics:    "ILI",
		Sloan:        "RCOEI",
		Psyche:       "VLEF",
		Temperaments: "Melancholic-Choleric",
		ProfileTags:  []string{"Science", "Physics", "Chemistry"},
		Image:        "https://upload.wikimedia.org/wikipedia/commons/thumb/7/7e/Marie_Curie_c1920.jpg/440px-Marie_Curie_c1920.jpg",
	},
}
