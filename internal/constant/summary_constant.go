package constant

// User-facing failure messages persisted on the job record. The
// no-content message is deliberately distinct from infrastructure
// failures so a client can tell "your transcript produced nothing"
// apart from "we broke".
const (
	ErrMsgNoContent     = "no content extracted from any transcript chunk"
	ErrMsgInternalFmt   = "internal processing error: %v"
	ErrMsgInvalidConfig = "invalid configuration: %v"
)

const (
	ModuleSummaryService = "SummaryService"
	ModuleMeetingService = "MeetingService"
	ModuleConfigService  = "ConfigService"
	ModuleConsumer       = "SummaryConsumer"
)
