package messages

const (
	CouldNotFindPlayer = "couldn't find the requested player"
	MissingApiKey      = "can't do an authenticated request without the API key"
	NotInGame          = "player is not in a game"
)
