package domain

// VisitStatus represents the lifecycle state of a visit.
type VisitStatus string

const (
	VisitStatusScheduled VisitStatus = "scheduled"
	VisitStatusCompleted VisitStatus = "completed"
	VisitStatusCancelled VisitStatus = "cancelled"
)

func (s VisitStatus) String() string { return string(s) }

func (s VisitStatus) IsValid() bool {
	switch s {
	case VisitStatusScheduled, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}

// VisitFormat represents how a visit is conducted.
type VisitFormat string

const (
	VisitFormatPresential VisitFormat = "presential"
	VisitFormatRemote     VisitFormat = "remote"
)

func (f VisitFormat) String() string { return string(f) }

func (f VisitFormat) IsValid() bool {
	switch f {
	case VisitFormatPresential, VisitFormatRemote:
		return true
	}
	return false
}

// Profile represents the professional role of a KOL.
type Profile string

const (
	ProfilePrescriber      Profile = "prescriber"
	ProfileHospitalManager Profile = "hospital_manager"
	ProfilePayer           Profile = "payer"
	ProfilePharmacist      Profile = "pharmacist"
	ProfileResearcher      Profile = "researcher"
)

func (p Profile) String() string { return string(p) }

func (p Profile) IsValid() bool {
	switch p {
	case ProfilePrescriber, ProfileHospitalManager, ProfilePayer,
		ProfilePharmacist, ProfileResearcher:
		return true
	}
	return false
}

// Tag classifies the topics discussed with a KOL or planned for a visit.
type Tag string

const (
	TagEfficacy          Tag = "efficacy"
	TagSafety            Tag = "safety"
	TagAccess            Tag = "access"
	TagCostEffectiveness Tag = "cost-effectiveness"
	TagProtocol          Tag = "protocol"
	TagClinicalData      Tag = "clinical-data"
	TagCompetition       Tag = "competition"
)

func (t Tag) String() string { return string(t) }

func (t Tag) IsValid() bool {
	switch t {
	case TagEfficacy, TagSafety, TagAccess, TagCostEffectiveness,
		TagProtocol, TagClinicalData, TagCompetition:
		return true
	}
	return false
}

// DocumentCategory classifies knowledge-base documents.
type DocumentCategory string

const (
	DocumentCategoryArticles      DocumentCategory = "articles"
	DocumentCategoryStudies       DocumentCategory = "studies"
	DocumentCategoryBehavioral    DocumentCategory = "behavioral"
	DocumentCategoryKnowledgeBase DocumentCategory = "knowledge-base"
)

func (c DocumentCategory) String() string { return string(c) }

func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryArticles, DocumentCategoryStudies,
		DocumentCategoryBehavioral, DocumentCategoryKnowledgeBase:
		return true
	}
	return false
}

// DocumentType identifies the media type of a document.
type DocumentType string

const (
	DocumentTypePDF  DocumentType = "pdf"
	DocumentTypeDoc  DocumentType = "doc"
	DocumentTypeLink DocumentType = "link"
)

func (t DocumentType) String() string { return string(t) }

func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePDF, DocumentTypeDoc, DocumentTypeLink:
		return true
	}
	return false
}

// AudioStatus represents the state of a transcription job.
type AudioStatus string

const (
	AudioStatusProcessing AudioStatus = "processing"
	AudioStatusCompleted  AudioStatus = "completed"
	AudioStatusFailed     AudioStatus = "failed"
)

func (s AudioStatus) String() string { return string(s) }

func (s AudioStatus) IsValid() bool {
	switch s {
	case AudioStatusProcessing, AudioStatusCompleted, AudioStatusFailed:
		return true
	}
	return false
}
