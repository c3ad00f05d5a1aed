package domain

import "testing"

func TestIsValidMBTIVote(t *testing.T) {
	for _, token := range MBTITypes {
		if !IsValidMBTIVote(token) {
			t.Fatalf("expected %s to be a valid mbti vote", token)
		}
	}
	for _, token := range []string{"INVALID", "entp", "XXXX", ""} {
		if IsValidMBTIVote(token) {
			t.Fatalf("expected %q to be rejected as mbti vote", token)
		}
	}
}

func TestIsValidEnneagramVote(t *testing.T) {
	for _, token := range EnneagramTypes {
		if !IsValidEnneagramVote(token) {
			t.Fatalf("expected %s to be a valid enneagram vote", token)
		}
	}
	if IsValidEnneagramVote("1w5") {
		t.Fatalf("expected 1w5 to be rejected, wings are adjacent only")
	}
	if IsValidEnneagramVote("9") {
		t.Fatalf("expected bare type without wing to be rejected")
	}
}

func TestIsValidZodiacVote(t *testing.T) {
	for _, token := range ZodiacTypes {
		if !IsValidZodiacVote(token) {
			t.Fatalf("expected %s to be a valid zodiac vote", token)
		}
	}
	if IsValidZodiacVote("aries") {
		t.Fatalf("expected lowercase zodiac token to be rejected")
	}
}

func TestParseCommentSort(t *testing.T) {
	cases := map[string]CommentSort{
		"best":    SortBest,
		"BEST":    SortBest,
		" best ":  SortBest,
		"recent":  SortRecent,
		"":        SortRecent,
		"unknown": SortRecent,
	}
	for input, want := range cases {
		if got := ParseCommentSort(input); got != want {
			t.Fatalf("ParseCommentSort(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseCommentFilter(t *testing.T) {
	cases := map[string]CommentFilter{
		"mbti":      FilterMBTI,
		"MBTI":      FilterMBTI,
		"Enneagram": FilterEnneagram,
		"zodiac":    FilterZodiac,
		"":          FilterNone,
		"bogus":     FilterNone,
	}
	for input, want := range cases {
		if got := ParseCommentFilter(input); got != want {
			t.Fatalf("ParseCommentFilter(%q) = %q, want %q", input, got, want)
		}
	}
}
