package component

// Personality selects the strike policy of a hippo
type Personality uint8

const (
	PersonalityPlayer Personality = iota
	PersonalitySniper
	PersonalityMasher
	PersonalityRando
	PersonalityRhythm
)

// AIPersonalities are the personalities assignable to autonomous hippos
var AIPersonalities = [...]Personality{
	PersonalitySniper,
	PersonalityMasher,
	PersonalityRando,
	PersonalityRhythm,
}

func (p Personality) String() string {
	switch p {
	case PersonalityPlayer:
		return "player"
	case PersonalitySniper:
		return "sniper"
	case PersonalityMasher:
		return "masher"
	case PersonalityRando:
		return "rando"
	case PersonalityRhythm:
		return "rhythm"
	default:
		return "unknown"
	}
}

// Title is the capitalized label used in banners
func (p Personality) Title() string {
	switch p {
	case PersonalitySniper:
		return "Sniper"
	case PersonalityMasher:
		return "Masher"
	case PersonalityRando:
		return "Rando"
	case PersonalityRhythm:
		return "Rhythm"
	default:
		return "You"
	}
}
