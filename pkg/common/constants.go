package common

const (
	// Redis key prefix for cached news search results.
	RedisKeyNewsCache = "briefing.news.cache"

	// Pipeline stage names recorded in PipelineRun.StepsCompleted.
	StageSelecting   = "selecting"
	StageEnriching   = "enriching"
	StageComposing   = "composing"
	StageDispatching = "dispatching"
)
