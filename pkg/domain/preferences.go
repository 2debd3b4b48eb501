package domain

// Category is the product vertical the user is shopping for.
type Category string

const (
	CategoryUnset Category = ""
	CategoryHair  Category = "hair"
	CategorySkin  Category = "skin"
)

// Other returns the opposite vertical, used for the upsell pivot after a
// completed recommendation cycle.
func (c Category) Other() Category {
	if c == CategoryHair {
		return CategorySkin
	}
	return CategoryHair
}

// PreferencePhase is the explicit stage of the scripted elicitation flow.
// Modeled as a tagged state rather than inferred from field presence so
// transitions stay exhaustive.
type PreferencePhase string

const (
	// PhaseCategory: no category chosen yet; option panel shows verticals.
	PhaseCategory PreferencePhase = "awaiting_category"
	// PhaseConcerns: category chosen; option panel shows concern toggles.
	PhaseConcerns PreferencePhase = "awaiting_concerns"
	// PhaseAnswered: concerns confirmed; recommendations have been shown.
	PhaseAnswered PreferencePhase = "answered"
)

// Preferences is the elicited preference state for one recommendation cycle.
type Preferences struct {
	Category Category        `json:"category"`
	Concerns []string        `json:"concerns"`
	Phase    PreferencePhase `json:"phase"`
}

// NewPreferences returns a fresh instance at the start of the script.
func NewPreferences() Preferences {
	return Preferences{Phase: PhaseCategory}
}

// HasConcern reports set membership.
func (p Preferences) HasConcern(value string) bool {
	for _, c := range p.Concerns {
		if c == value {
			return true
		}
	}
	return false
}

// ConcernOption is one selectable entry of the concern panel.
type ConcernOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}
