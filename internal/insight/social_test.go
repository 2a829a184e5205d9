package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kinlog/kinlog/internal/model"
)

func person(id, name, archetype string) model.Person {
	return model.Person{ID: id, Name: name, Tier: model.TierClose, Archetype: archetype}
}

// ratedWith builds n rated interactions with one participant.
func ratedWith(prefix, personID string, n, quality int) []model.Interaction {
	out := make([]model.Interaction, 0, n)
	for i := 0; i < n; i++ {
		at := baseSunday.AddDate(0, 0, i)
		out = append(out, interactionOn(fmt.Sprintf("%s-%d", prefix, i), at, quality, personID))
	}
	return out
}

func TestDetectQualityDepth(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", "mentor"),
		person("p-bob", "Bob", "buddy"),
	}
	interactions := append(
		ratedWith("a", "p-alice", 4, 5),
		ratedWith("b", "p-bob", 8, 3)...,
	)

	p := detectQualityDepth(nil, interactions, people, insightNow)
	if p == nil {
		t.Fatal("expected a quality depth pattern")
	}
	if !strings.Contains(p.Description, "Alice") {
		t.Errorf("expected Alice in the description, got %q", p.Description)
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("average 5.0 should be high confidence, got %s", p.Confidence)
	}
	if p.Data["top_avg"] != 5.0 {
		t.Errorf("expected top average 5.0, got %v", p.Data["top_avg"])
	}
}

func TestDetectQualityDepthSkipsUnknownPeople(t *testing.T) {
	people := []model.Person{person("p-alice", "Alice", "")}
	interactions := append(
		ratedWith("a", "p-alice", 4, 5),
		ratedWith("g", "p-ghost", 8, 3)...,
	)

	p := detectQualityDepth(nil, interactions, people, insightNow)
	if p == nil {
		t.Fatal("expected a pattern; unknown participants are skipped, not fatal")
	}
	if !strings.Contains(p.Description, "Alice") {
		t.Errorf("expected Alice, got %q", p.Description)
	}
}

func TestDetectQualityDepthBelowLift(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", ""),
		person("p-bob", "Bob", ""),
	}
	// Everyone rates the same; no one stands out.
	interactions := append(
		ratedWith("a", "p-alice", 6, 4),
		ratedWith("b", "p-bob", 6, 4)...,
	)

	if p := detectQualityDepth(nil, interactions, people, insightNow); p != nil {
		t.Errorf("uniform ratings should detect nothing, got %+v", p)
	}
}

func TestDetectQualityDepthSampleGates(t *testing.T) {
	people := []model.Person{person("p-alice", "Alice", "")}

	// Nine rated interactions overall.
	if p := detectQualityDepth(nil, ratedWith("a", "p-alice", 9, 5), people, insightNow); p != nil {
		t.Error("expected nil below 10 rated interactions")
	}

	// Unrated interactions never count toward the gate.
	interactions := append(
		ratedWith("a", "p-alice", 9, 5),
		interactionOn("u", baseSunday, 0, "p-alice"),
	)
	if p := detectQualityDepth(nil, interactions, people, insightNow); p != nil {
		t.Error("expected unrated interactions to be excluded from the gate")
	}
}

func TestDetectQualityDepthPerPersonGate(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", ""),
		person("p-bob", "Bob", ""),
	}
	// Alice rates highest but only twice; Bob carries the volume.
	interactions := append(
		ratedWith("a", "p-alice", 2, 5),
		ratedWith("b", "p-bob", 10, 3)...,
	)

	if p := detectQualityDepth(nil, interactions, people, insightNow); p != nil && strings.Contains(p.Description, "Alice") {
		t.Errorf("a person below 3 rated interactions must not qualify, got %+v", p)
	}
}

func TestDetectArchetypeAffinityHigh(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", "mentor"),
		person("p-bob", "Bob", "buddy"),
	}
	// mentor averages 100, buddy 60; spread 40.
	interactions := append(
		ratedWith("a", "p-alice", 8, 5),
		ratedWith("b", "p-bob", 7, 3)...,
	)

	p := detectArchetypeAffinity(nil, interactions, people, insightNow)
	if p == nil {
		t.Fatal("expected an archetype affinity pattern")
	}
	if p.Confidence != model.ConfidenceHigh {
		t.Errorf("spread 40 should be high confidence, got %s", p.Confidence)
	}
	if !strings.Contains(p.Description, "mentor") || !strings.Contains(p.Description, "buddy") {
		t.Errorf("expected both archetypes named, got %q", p.Description)
	}
	if p.Data["spread"] != 40.0 {
		t.Errorf("expected spread 40, got %v", p.Data["spread"])
	}
}

func TestDetectArchetypeAffinityMedium(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", "mentor"),
		person("p-bob", "Bob", "buddy"),
	}
	// mentor averages 100, buddy 80; spread 20.
	interactions := append(
		ratedWith("a", "p-alice", 8, 5),
		ratedWith("b", "p-bob", 7, 4)...,
	)

	p := detectArchetypeAffinity(nil, interactions, people, insightNow)
	if p == nil {
		t.Fatal("expected an archetype affinity pattern")
	}
	if p.Confidence != model.ConfidenceMedium {
		t.Errorf("spread 20 should be medium confidence, got %s", p.Confidence)
	}
}

func TestDetectArchetypeAffinityBelowSpread(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", "mentor"),
		person("p-bob", "Bob", "buddy"),
	}
	interactions := append(
		ratedWith("a", "p-alice", 8, 4),
		ratedWith("b", "p-bob", 7, 4)...,
	)

	if p := detectArchetypeAffinity(nil, interactions, people, insightNow); p != nil {
		t.Errorf("zero spread should detect nothing, got %+v", p)
	}
}

func TestDetectArchetypeAffinityBucketGates(t *testing.T) {
	// Only one archetype represented.
	people := []model.Person{person("p-alice", "Alice", "mentor")}
	if p := detectArchetypeAffinity(nil, ratedWith("a", "p-alice", 15, 5), people, insightNow); p != nil {
		t.Error("expected nil with fewer than 2 qualified archetypes")
	}

	// Second archetype present but under 3 interactions.
	people = append(people, person("p-bob", "Bob", "buddy"))
	interactions := append(
		ratedWith("a", "p-alice", 13, 5),
		ratedWith("b", "p-bob", 2, 3)...,
	)
	if p := detectArchetypeAffinity(nil, interactions, people, insightNow); p != nil {
		t.Error("expected nil when a bucket is below 3 interactions")
	}
}

func TestDetectArchetypeAffinitySampleGate(t *testing.T) {
	people := []model.Person{
		person("p-alice", "Alice", "mentor"),
		person("p-bob", "Bob", "buddy"),
	}
	interactions := append(
		ratedWith("a", "p-alice", 7, 5),
		ratedWith("b", "p-bob", 7, 3)...,
	)

	if p := detectArchetypeAffinity(nil, interactions, people, insightNow); p != nil {
		t.Errorf("expected nil below 15 rated interactions, got %+v", p)
	}
}
