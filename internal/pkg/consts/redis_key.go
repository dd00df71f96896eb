package consts

const (
	AccountAnalyticsKey = "account:analytics:"
)

const (
	AccountProcessLock = "account:process:lock:"
)
