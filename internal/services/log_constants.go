package services

const (
	LogActionDataRetrieval = "DATA_RETRIEVAL"
	LogActionDataTransform = "DATA_TRANSFORM"
	LogOutcomeSuccess      = "SUCCESS"
	LogOutcomeFail         = "FAIL"
	LogOutcomeWarn         = "WARN"
)
