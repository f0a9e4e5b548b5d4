package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"
	// RpcSimulateHand plays one hand from a launch configuration and returns its record.
	RpcSimulateHand = "simulate_hand"

	// MatchNameEuchre is the authoritative match handler name registered with Nakama.
	MatchNameEuchre = "euchre_match"

	// HandsCollection is the storage collection finished hands are archived to.
	HandsCollection = "euchre_hands"
)

// Match label keys and values.
const (
	MatchLabelKey_OpenSeats = "open"
	MatchLabelKey_Game      = "game"
	MatchLabelKey_Phase     = "phase"

	gameName     = "euchre"
	phaseLobby   = "lobby"
	phasePlaying = "playing"
)

// matchTickRate is ticks per second; delays are converted to ticks with it.
const matchTickRate = 5

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartHand int64 = 1
	OpDecision  int64 = 2
	OpDiscard   int64 = 3
	OpPlayCard  int64 = 4

	// Server -> Client events
	OpMatchState   int64 = 100
	OpHandStarted  int64 = 101
	OpHandDealt    int64 = 102 // send privately
	OpBidAction    int64 = 103
	OpTrumpDecided int64 = 104
	OpCardPlayed   int64 = 105
	OpTrickWon     int64 = 106
	OpHandEnded    int64 = 107
	OpTurn         int64 = 108
	OpHandPassed   int64 = 109
	OpDiscardMade  int64 = 110 // send privately
	OpGameError    int64 = 199
)

// Error codes carried by game_error messages.
const (
	errCodeBadRequest = 400
	errCodeForbidden  = 403
	errCodeConflict   = 409
)
