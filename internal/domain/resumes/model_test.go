package resumes

import (
	"reflect"
	"testing"
)

func TestExperienceListScanRoundTrip(t *testing.T) {
	in := ExperienceList{
		{
			ID:          "exp-1",
			Company:     "Acme",
			Position:    "Engineer",
			StartDate:   "2022-01",
			Current:     true,
			Description: []string{"Built the billing pipeline"},
		},
	}

	val, err := in.Value()
	if err != nil {
		t.Fatal(err)
	}

	var out ExperienceList
	if err := out.Scan([]byte(val.(string))); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %#v != %#v", in, out)
	}
}

func TestJSONBScanSources(t *testing.T) {
	var skills SkillList

	if err := skills.Scan(nil); err != nil {
		t.Fatalf("nil source: %v", err)
	}
	if skills != nil {
		t.Fatalf("nil source should leave destination untouched, got %#v", skills)
	}

	if err := skills.Scan(`["Go","SQL"]`); err != nil {
		t.Fatalf("string source: %v", err)
	}
	if !reflect.DeepEqual(skills, SkillList{"Go", "SQL"}) {
		t.Fatalf("string source parsed to %#v", skills)
	}

	if err := skills.Scan(42); err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}
