package booking

// Operation names double as metric labels and as the RPC action vocabulary.
const (
	OpListBookableDates = "get_available_dates"
	OpListFreeSlots     = "get_free_times"
	OpCheckExisting     = "check_existing"
	OpReserve           = "register"
	OpCancel            = "cancel_booking"
	OpListUserBookings  = "get_user_bookings"
	OpAggregateStats    = "get_stats"
	OpAggregateQuotas   = "get_quotas"
	OpTest              = "test"
)
