package component

// PowerUpType: speed (faster strikes), range (longer reach, larger mouth), stun (interrupts rivals)
type PowerUpType uint8

const (
	PowerUpNone PowerUpType = iota
	PowerUpSpeed
	PowerUpRange
	PowerUpStun
)

// PowerUpTypes lists the spawnable types
var PowerUpTypes = [...]PowerUpType{PowerUpSpeed, PowerUpRange, PowerUpStun}

func (p PowerUpType) String() string {
	switch p {
	case PowerUpSpeed:
		return "speed"
	case PowerUpRange:
		return "range"
	case PowerUpStun:
		return "stun"
	default:
		return "none"
	}
}
