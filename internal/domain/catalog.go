package domain

// SymptomDomain identifies one of the two DSM-5 symptom domains.
type SymptomDomain string

const (
	INATTENTION   SymptomDomain = "inattention"
	HYPERACTIVITY SymptomDomain = "hyperactivity"
)

// SymptomKey identifies a single DSM-5 criterion within a domain.
// The key set is closed: the 18 constants below are the only valid keys.
type SymptomKey string

// Inattention criteria keys (DSM-5 A1).
const (
	FailsAttention       SymptomKey = "fails_attention"
	DifficultySustaining SymptomKey = "difficulty_sustaining"
	NotListening         SymptomKey = "not_listening"
	NotFollowing         SymptomKey = "not_following"
	DifficultyOrganizing SymptomKey = "difficulty_organizing"
	AvoidsMentalTasks    SymptomKey = "avoids_mental_tasks"
	LosesThings          SymptomKey = "loses_things"
	EasilyDistracted     SymptomKey = "easily_distracted"
	Forgetful            SymptomKey = "forgetful"
)

// Hyperactivity/impulsivity criteria keys (DSM-5 A2).
const (
	Fidgets           SymptomKey = "fidgets"
	LeavesSeat        SymptomKey = "leaves_seat"
	RunsClimbs        SymptomKey = "runs_climbs"
	UnableQuiet       SymptomKey = "unable_quiet"
	OnTheGo           SymptomKey = "on_the_go"
	TalksExcessive    SymptomKey = "talks_excessive"
	Blurts            SymptomKey = "blurts"
	DifficultyWaiting SymptomKey = "difficulty_waiting"
	Interrupts        SymptomKey = "interrupts"
)

// Criterion is one catalog entry: a stable key plus the published
// criterion text shown to clinicians.
type Criterion struct {
	Key         SymptomKey `json:"key"`
	Description string     `json:"description"`
}

// Catalog is the fixed ordered list of criteria for one symptom domain.
// Catalogs are defined at process start, shared read-only, and always hold
// exactly nine entries.
type Catalog struct {
	Domain  SymptomDomain
	entries []Criterion
}

var inattentionCatalog = Catalog{
	Domain: INATTENTION,
	entries: []Criterion{
		{FailsAttention, "Often fails to give close attention to details or makes careless mistakes"},
		{DifficultySustaining, "Often has difficulty sustaining attention in tasks or play"},
		{NotListening, "Often does not seem to listen when spoken to directly"},
		{NotFollowing, "Often does not follow through on instructions and fails to finish tasks"},
		{DifficultyOrganizing, "Often has difficulty organizing tasks and activities"},
		{AvoidsMentalTasks, "Often avoids, dislikes, or is reluctant to engage in tasks requiring mental effort"},
		{LosesThings, "Often loses things necessary for tasks or activities"},
		{EasilyDistracted, "Is often easily distracted by extraneous stimuli"},
		{Forgetful, "Is often forgetful in daily activities"},
	},
}

var hyperactivityCatalog = Catalog{
	Domain: HYPERACTIVITY,
	entries: []Criterion{
		{Fidgets, "Often fidgets with or taps hands/feet or squirms in seat"},
		{LeavesSeat, "Often leaves seat in situations when remaining seated is expected"},
		{RunsClimbs, "Often runs about or climbs in situations where inappropriate"},
		{UnableQuiet, "Often unable to play or engage in leisure activities quietly"},
		{OnTheGo, "Is often 'on the go' acting as if 'driven by a motor'"},
		{TalksExcessive, "Often talks excessively"},
		{Blurts, "Often blurts out an answer before a question has been completed"},
		{DifficultyWaiting, "Often has difficulty waiting their turn"},
		{Interrupts, "Often interrupts or intrudes on others"},
	},
}

// InattentionCatalog returns the fixed inattention criteria catalog.
func InattentionCatalog() Catalog {
	return inattentionCatalog
}

// HyperactivityCatalog returns the fixed hyperactivity/impulsivity
// criteria catalog.
func HyperactivityCatalog() Catalog {
	return hyperactivityCatalog
}

// Len returns the number of criteria in the catalog.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the criteria in their published order. Callers must not
// modify the returned slice.
func (c Catalog) Entries() []Criterion {
	return c.entries
}

// Keys returns the criterion keys in catalog order.
func (c Catalog) Keys() []SymptomKey {
	keys := make([]SymptomKey, 0, len(c.entries))
	for _, e := range c.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Description returns the criterion text for a key, or false when the key is
// not part of this catalog.
func (c Catalog) Description(key SymptomKey) (string, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e.Description, true
		}
	}
	return "", false
}

// Contains reports whether the key belongs to this catalog.
func (c Catalog) Contains(key SymptomKey) bool {
	_, ok := c.Description(key)
	return ok
}
