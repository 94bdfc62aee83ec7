package storage

// Fixed keys of the three persisted records
const (
	// KeyAccounts holds the ordered sequence of registered accounts
	KeyAccounts = "gamePortalUsers"
	// KeyCurrentSession holds the signed-in session projection, if any
	KeyCurrentSession = "gamePortalUser"
	// KeyHistory holds every user's game results in one sequence
	KeyHistory = "gamePortalHistory"
)
