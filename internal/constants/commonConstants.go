package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixMemberNumber CachePrefix = "MEMBER_NO_"
	CachePrefixMemberUUID   CachePrefix = "MEMBER_UUID_"
)

// Availability statuses as stored in work_contract.status.
const (
	WorkStatusOK = "OK"
	WorkStatusNG = "NG"
)

// Labels prefixed to each non-empty note in the monthly detail view.
const (
	NoteLabelNearMiss    = "ヒヤリ:"
	NoteLabelImprovement = "改善:"
	NoteLabelDamage      = "破損:"
	NoteSeparator        = " / "
)

// Fee tiers for the contractor daily report.
const (
	FeeMinimumGuarantee = 6000
	FeePerFlight        = 4000
	FeeDiscountSmall    = 1000 // 2-3 flights
	FeeDiscountLarge    = 2000 // 4+ flights

	MaxDailyFlights = 100
)

const (
	JobAvailabilityCleanup = "availability_cleanup"

	ExpiryWarningDays = 31
)
