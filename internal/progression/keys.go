package progression

// Persisted keys. Values are decimal integers or "true"/"false".
const (
	KeyBlocksBroken        = "brickBreakerBlocksBroken"
	KeyRecord              = "brickBreakerRecord"
	KeyTimesPlayed         = "brickBreakerTimesPlayed"
	KeyWins                = "brickBreakerWins"
	KeyBrickoTickles       = "brickBreakerBrickoTickles"
	KeyBallCount           = "brickBreakerBallCount"
	KeyHighScoreUnlocked   = "brickBreakerHighScoreUnlocked"
	KeyViewBalanceUnlocked = "brickBreakerViewBalanceUnlocked"
	KeyBrickoVisible       = "brickBreakerBrickoVisible"
	KeyPeruseHintVisible   = "brickBreakerPeruseHintVisible"
	KeyBazaarUnlocked      = "brickBreakerBazaarUnlocked"
)

// AllKeys lists every persisted key.
var AllKeys = []string{
	KeyBlocksBroken,
	KeyRecord,
	KeyTimesPlayed,
	KeyWins,
	KeyBrickoTickles,
	KeyBallCount,
	KeyHighScoreUnlocked,
	KeyViewBalanceUnlocked,
	KeyBrickoVisible,
	KeyPeruseHintVisible,
	KeyBazaarUnlocked,
}
