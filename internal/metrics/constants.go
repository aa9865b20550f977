package metrics

// Metric names
const (
	MetricNameKillsTotal         = "worldpvp_kills_total"
	MetricNameRejectedKillsTotal = "worldpvp_rejected_kills_total"
	MetricNameItemRewardsTotal   = "worldpvp_item_rewards_total"
	MetricNameRewardMissesTotal  = "worldpvp_reward_misses_total"
	MetricNameMoneyGrantedTotal  = "worldpvp_money_granted_total"
	MetricNameXPGrantedTotal     = "worldpvp_experience_granted_total"
	MetricNameSearchAttempts     = "worldpvp_reward_search_attempts"
	MetricNameLootTableItems     = "worldpvp_loot_table_items"
	MetricNameHandlerErrorsTotal = "worldpvp_kill_handler_errors_total"
	MetricNameHTTPRequestsTotal  = "worldpvp_ops_http_requests_total"
)

// Metric help text
const (
	HelpTextKillsTotal         = "Total number of processed world PvP kills"
	HelpTextRejectedKillsTotal = "Total number of kill events rejected for invalid input"
	HelpTextItemRewardsTotal   = "Total number of items granted, by quality"
	HelpTextRewardMissesTotal  = "Total number of kills without an item reward, by reason"
	HelpTextMoneyGrantedTotal  = "Total copper granted for world PvP kills"
	HelpTextXPGrantedTotal     = "Total experience granted for world PvP kills"
	HelpTextSearchAttempts     = "Loot bucket draws used per reward search"
	HelpTextLootTableItems     = "Number of loaded loot entries, by quality"
	HelpTextHandlerErrorsTotal = "Total number of kill handler errors in the dispatcher"
	HelpTextHTTPRequestsTotal  = "Total number of ops HTTP requests"
)

// Labels
const (
	LabelQuality = "quality"
	LabelReason  = "reason"
	LabelPath    = "path"
	LabelStatus  = "status"
)

// Miss reasons
const (
	ReasonNoQuality       = "no_quality"
	ReasonNotFound        = "not_found"
	ReasonMissingTemplate = "missing_template"
	ReasonInventoryFull   = "inventory_full"
	ReasonStoreFailed     = "store_failed"
	ReasonOther           = "other"
)

// SearchAttemptBuckets covers the bounded search of 100 draws.
var SearchAttemptBuckets = []float64{1, 2, 5, 10, 25, 50, 75, 100}
