package store

import "hourglass/internal/platform/config"

// ConfigFrom reads CORE_PG_* and CORE_CH_* from c. CORE_PG_URL is required.
func ConfigFrom(c config.Conf, app string) Config {
	pgc := c.Prefix("CORE_PG_")
	var cfg Config
	cfg.AppName = app
	cfg.PG.URL = pgc.MustString("URL")
	cfg.PG.MaxConns = int32(pgc.MayInt("MAX_CONNS", 4))
	cfg.PG.LogSQL = pgc.MayBool("LOG_SQL", false)
	cfg.PG.SlowMs = pgc.MayInt("SLOW_MS", 500)
	cfg.CH.URL = c.Prefix("CORE_CH_").MayString("URL", "")
	return cfg
}
