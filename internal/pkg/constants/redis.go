package constants

// Redis key formats
const (
	// Auth
	KeySession = "session:%s" // Format: session:{session_id}

	// Collection
	KeyAgentBookings  = "collection:agent:%s:bookings" // Hash: booking_id -> booking JSON
	KeyCollectionLock = "lock:collection:%s"           // Format: lock:collection:{booking_id}

	// Provider
	KeyPayoutLock = "lock:payout:%s" // Format: lock:payout:{provider_id}
)
