package entities

// MeditationStatus is the tri-state rating a user can give a day's reading.
type MeditationStatus string

const (
	MeditationGood MeditationStatus = "good"
	MeditationOk   MeditationStatus = "ok"
	MeditationBad  MeditationStatus = "bad"
)

// Valid reports whether the status is one of the three known ratings.
func (s MeditationStatus) Valid() bool {
	return s == MeditationGood || s == MeditationOk || s == MeditationBad
}

// MeditationRecord maps day numbers to ratings. A missing day means "unrated".
type MeditationRecord map[int]MeditationStatus

// ArchivedReading is the frozen snapshot of a day's content, written once on
// explicit completion. Re-saving the same day overwrites.
type ArchivedReading struct {
	Day              int     `json:"day"`
	DateSaved        string  `json:"dateSaved"`
	ReadingReference string  `json:"readingReference"`
	Passage          string  `json:"passage"`
	MeditationGuide  string  `json:"meditationGuide"`
	Context          string  `json:"context"`
	Intention        string  `json:"intention"`
	ContextImageURL  *string `json:"contextImageUrl"`
}

// DiaryEntry is the content of one meditation diary entry.
type DiaryEntry struct {
	Repentance string `json:"repentance"`
	Resolve    string `json:"resolve"`
	Dream      string `json:"dream"`
}

// SavedDiaryEntry is a diary entry with its save metadata. Newest first.
type SavedDiaryEntry struct {
	ID        int64      `json:"id"`
	Timestamp string     `json:"timestamp"`
	Content   DiaryEntry `json:"content"`
}

// SavedPlanEntry is a saved evangelism plan. Newest first.
type SavedPlanEntry struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
}
