package common

import "mtfuji-paragliding/fujipsystem/internal/metrics"

const memberCachePattern = "member"

func recordCacheLookup(hit bool) {
	if hit {
		metrics.Default().CacheHitsTotal.WithLabelValues(memberCachePattern).Inc()
		return
	}
	metrics.Default().CacheMissesTotal.WithLabelValues(memberCachePattern).Inc()
}
