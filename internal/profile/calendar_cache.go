package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fitquest/internal/datemath"
	"github.com/2beens/fitquest/internal/telemetry/tracing"
	"github.com/2beens/fitquest/internal/wellness"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	oneHour             = 60 * 60
	calendarCacheExpire = oneHour * 24
	megabyte            = 1024 * 1024
)

// CalendarCache memoizes calendar projections. Projection is pure, so an entry keyed
// by all of its inputs never goes stale.
type CalendarCache struct {
	cache *freecache.Cache
}

func NewCalendarCache(sizeMB int) *CalendarCache {
	return &CalendarCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func calendarCacheKey(cal *datemath.Calendar, params wellness.ProjectionParams) string {
	return fmt.Sprintf(
		"calendar::%s::%s::%d::%d::%d",
		cal.Location(),
		cal.DateKey(params.CycleEndDate),
		params.CycleLength,
		params.PeriodLength,
		params.MonthsToPredict,
	)
}

// Project returns the cached projection for params, computing and storing it on a miss.
// The returned bool reports a cache hit.
func (c *CalendarCache) Project(
	ctx context.Context,
	cal *datemath.Calendar,
	params wellness.ProjectionParams,
) (_ wellness.Annotations, hit bool, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "calendarcache.project")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	cacheKey := calendarCacheKey(cal, params)
	span.SetAttributes(attribute.String("key", cacheKey))

	if cached, getErr := c.cache.Get([]byte(cacheKey)); getErr == nil {
		annotations := wellness.Annotations{}
		if unmarshalErr := json.Unmarshal(cached, &annotations); unmarshalErr == nil {
			span.SetAttributes(attribute.Bool("hit", true))
			return annotations, true, nil
		} else {
			log.Errorf("unmarshal cached calendar %s: %s", cacheKey, unmarshalErr)
		}
	}

	annotations, err := wellness.ProjectCalendar(cal, params)
	if err != nil {
		return nil, false, err
	}

	annotationsBytes, err := json.Marshal(annotations)
	if err != nil {
		return nil, false, fmt.Errorf("marshal calendar: %w", err)
	}
	if setErr := c.cache.Set([]byte(cacheKey), annotationsBytes, calendarCacheExpire); setErr != nil {
		log.Errorf("failed to write calendar cache %s: %s", cacheKey, setErr)
	}

	return annotations, false, nil
}

func (c *CalendarCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
