package config

import "github.com/spf13/viper"

// SetDefaults registers a default for every key so that environment
// variables are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("navidrome.api_base", "")
	v.SetDefault("navidrome.login", "")
	v.SetDefault("navidrome.password", "")

	v.SetDefault("lastfm.api_base", "http://ws.audioscrobbler.com/2.0/")
	v.SetDefault("lastfm.api_key", "")

	v.SetDefault("graph.match_threshold", 0.65)
	v.SetDefault("graph.show_orphans", false)

	v.SetDefault("expand.fetch_limit", 25)
	v.SetDefault("expand.reduced_fetch_limit", 10)
	v.SetDefault("expand.reduce_above", 500)
	v.SetDefault("expand.request_delay", "250ms")
	v.SetDefault("expand.requests_per_second", 0.0) // 0 = fixed delay
	v.SetDefault("expand.hops", 1)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.backend", BackendSQLite)
	v.SetDefault("cache.path", "") // backend default location

	v.SetDefault("neo4j.uri", "")
	v.SetDefault("neo4j.username", "neo4j")
	v.SetDefault("neo4j.password", "")
	v.SetDefault("neo4j.database", "neo4j")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("http.timeout", "30s")
}
