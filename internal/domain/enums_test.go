package domain

import "testing"

func TestEnums_IsValid(t *testing.T) {
	t.Parallel()

	t.Run("visit status", func(t *testing.T) {
		t.Parallel()
		for _, s := range []VisitStatus{VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled} {
			if !s.IsValid() {
				t.Errorf("%s should be valid", s)
			}
		}
		if VisitStatus("postponed").IsValid() {
			t.Error("unknown status should be invalid")
		}
	})

	t.Run("visit format", func(t *testing.T) {
		t.Parallel()
		for _, f := range []VisitFormat{VisitFormatPresential, VisitFormatRemote} {
			if !f.IsValid() {
				t.Errorf("%s should be valid", f)
			}
		}
		if VisitFormat("hybrid").IsValid() {
			t.Error("unknown format should be invalid")
		}
	})

	t.Run("profile", func(t *testing.T) {
		t.Parallel()
		for _, p := range []Profile{ProfilePrescriber, ProfileHospitalManager, ProfilePayer, ProfilePharmacist, ProfileResearcher} {
			if !p.IsValid() {
				t.Errorf("%s should be valid", p)
			}
		}
		if Profile("influencer").IsValid() {
			t.Error("unknown profile should be invalid")
		}
	})

	t.Run("tag", func(t *testing.T) {
		t.Parallel()
		for _, tag := range []Tag{TagEfficacy, TagSafety, TagAccess, TagCostEffectiveness, TagProtocol, TagClinicalData, TagCompetition} {
			if !tag.IsValid() {
				t.Errorf("%s should be valid", tag)
			}
		}
		if Tag("pricing").IsValid() {
			t.Error("unknown tag should be invalid")
		}
	})

	t.Run("document category and type", func(t *testing.T) {
		t.Parallel()
		for _, c := range []DocumentCategory{DocumentCategoryArticles, DocumentCategoryStudies, DocumentCategoryBehavioral, DocumentCategoryKnowledgeBase} {
			if !c.IsValid() {
				t.Errorf("%s should be valid", c)
			}
		}
		if DocumentCategory("memes").IsValid() {
			t.Error("unknown category should be invalid")
		}
		for _, dt := range []DocumentType{DocumentTypePDF, DocumentTypeDoc, DocumentTypeLink} {
			if !dt.IsValid() {
				t.Errorf("%s should be valid", dt)
			}
		}
		if DocumentType("gif").IsValid() {
			t.Error("unknown type should be invalid")
		}
	})

	t.Run("audio status", func(t *testing.T) {
		t.Parallel()
		for _, s := range []AudioStatus{AudioStatusProcessing, AudioStatusCompleted, AudioStatusFailed} {
			if !s.IsValid() {
				t.Errorf("%s should be valid", s)
			}
		}
		if AudioStatus("queued").IsValid() {
			t.Error("unknown status should be invalid")
		}
	})
}
