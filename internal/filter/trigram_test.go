package filter

import "testing"

func names() []string {
	return []string{
		"Ada Meyer (web)",
		"Bruno Castellano (referral)",
		"Carla Jensen (spring-promo)",
		"Dmitri Volkov (phone)",
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	m := NewMatcher(names())

	matches := m.Search("")

	if len(matches) != 4 {
		t.Fatalf("len = %d, want 4", len(matches))
	}
	for i, match := range matches {
		if match.Index != i {
			t.Errorf("match %d index = %d, original order expected", i, match.Index)
		}
	}
}

func TestSearch_ExactWord(t *testing.T) {
	m := NewMatcher(names())

	matches := m.Search("jensen")

	if len(matches) != 1 {
		t.Fatalf("len = %d, want 1", len(matches))
	}
	if matches[0].Index != 2 {
		t.Errorf("index = %d, want 2", matches[0].Index)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	m := NewMatcher(names())

	if len(m.Search("ADA")) != 1 {
		t.Error("uppercase query should match lowercase text")
	}
}

func TestSearch_PartialWord(t *testing.T) {
	m := NewMatcher(names())

	matches := m.Search("castel")

	if len(matches) != 1 || matches[0].Index != 1 {
		t.Errorf("matches = %+v, want single match at index 1", matches)
	}
}

func TestSearch_MultiWordAND(t *testing.T) {
	m := NewMatcher(names())

	// Both words must match the same entry.
	matches := m.Search("carla promo")
	if len(matches) != 1 || matches[0].Index != 2 {
		t.Errorf("matches = %+v, want single match at index 2", matches)
	}

	if len(m.Search("carla phone")) != 0 {
		t.Error("words matching different entries must not produce a match")
	}
}

func TestSearch_ShortWordSubstring(t *testing.T) {
	m := NewMatcher(names())

	// 1-2 char words fall back to substring matching.
	matches := m.Search("ad")
	found := false
	for _, match := range matches {
		if match.Index == 0 {
			found = true
		}
	}
	if !found {
		t.Error("short query 'ad' should match 'Ada Meyer'")
	}
}

func TestSearch_NoMatch(t *testing.T) {
	m := NewMatcher(names())

	if matches := m.Search("zzzzzz"); len(matches) != 0 {
		t.Errorf("matches = %+v, want none", matches)
	}
}

func TestSearch_ExactMatchRanksFirst(t *testing.T) {
	m := NewMatcher([]string{"springfield campaign", "spring-promo"})

	matches := m.Search("spring-promo")
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Index != 1 {
		t.Errorf("best match index = %d, want exact substring match first", matches[0].Index)
	}
}
