package character

// Defaults
const (
	DefaultSanityDrainInDark = 1.0 // per second with the light off
)

// Log messages
const (
	LogMsgSanityRestored  = "Sanity restored"
	LogMsgBatteryRecharge = "Flashlight recharged"
	LogMsgBatteryDepleted = "Flashlight battery depleted"
	LogMsgItemAttached    = "Item attached to hand"
	LogMsgItemDetached    = "Item detached from hand"
	LogMsgKeyUsed         = "Key used"
	LogMsgSoundPlayed     = "Sound played"
)
