package game

// Logical asset names. The simulation never opens them; the presentation layer resolves them.
const (
	AssetPlayer   = "player.png"
	AssetAsteroid = "asteroid1.png"
	AssetFont     = "Orbitron.ttf"
)

// Text labels used for phase display content
const (
	LabelTitle  = "title"
	LabelPrompt = "prompt"
	LabelScore  = "score"
	LabelLives  = "lives"
)

// EntityView is the read-only presentation record of one entity
type EntityView struct {
	ID       EntityID
	Kind     EntityKind
	Position Vector2
	Rotation float64
	Velocity Vector2
	Scale    Vector2
	Extent   Vector2
	Size     int
	Sprite   string
	Label    string
	Text     string
}

// Snapshot is everything a renderer needs to draw one frame
type Snapshot struct {
	Phase     Phase
	SessionID string
	Entities  []EntityView

	// Score and Lives are the HUD display strings
	Score string
	Lives string

	Points    int
	LivesLeft int
}

// Count returns how many views are of the given kind
func (s Snapshot) Count(kind EntityKind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// Text returns the content of the text entity with the given label
func (s Snapshot) Text(label string) (string, bool) {
	for _, v := range s.Entities {
		if v.Kind == KindText && v.Label == label {
			return v.Text, true
		}
	}
	return "", false
}

func viewOf(e *Entity) EntityView {
	v := EntityView{
		ID:       e.ID,
		Kind:     e.Kind,
		Position: e.Position,
		Rotation: e.Rotation,
		Velocity: e.Velocity,
		Scale:    e.Scale,
		Extent:   e.Extent,
		Size:     e.Size,
		Label:    e.Label,
		Text:     e.Text,
	}
	switch e.Kind {
	case KindPlayer:
		v.Sprite = AssetPlayer
	case KindAsteroid:
		v.Sprite = AssetAsteroid
	}
	return v
}
