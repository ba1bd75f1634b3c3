package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/2beens/workoutlog/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=cache_mocks_test.go -package=catalog_test

const (
	chunkCountKey  = "catalog||chunks"
	chunkKeyPrefix = "catalog||chunk||"

	// freecache refuses key+value larger than a quarter of one of its 256
	// segments, minus the entry header
	freecacheMinSize     = 512 * 1024
	freecacheSegments    = 256
	freecacheEntryHeader = 24
)

func chunkKey(i int) []byte {
	return []byte(chunkKeyPrefix + strconv.Itoa(i))
}

type exercisesSource interface {
	List(ctx context.Context) ([]Exercise, error)
}

// CachedRepo serves the catalog from an in-process freecache, loading it from
// the source on a miss. The catalog is read-only while the service runs.
// It is stored as JSON chunks small enough for single freecache entries, plus
// a key holding the chunk count.
type CachedRepo struct {
	source        exercisesSource
	cache         *freecache.Cache
	ttl           time.Duration
	maxChunkBytes int
}

func NewCachedRepo(source exercisesSource, sizeMB int, ttl time.Duration) *CachedRepo {
	size := max(sizeMB*1024*1024, freecacheMinSize)
	maxEntry := size/freecacheSegments/4 - freecacheEntryHeader
	return &CachedRepo{
		source:        source,
		cache:         freecache.NewCache(size),
		ttl:           ttl,
		maxChunkBytes: maxEntry - len(chunkKey(math.MaxInt32)),
	}
}

func (c *CachedRepo) List(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercises, ok := c.cached(); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return exercises, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	exercises, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}
	c.store(exercises)

	return exercises, nil
}

func (c *CachedRepo) cached() ([]Exercise, bool) {
	countRaw, err := c.cache.Get([]byte(chunkCountKey))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("catalog cache get: %s", err)
		}
		return nil, false
	}
	count, err := strconv.Atoi(string(countRaw))
	if err != nil {
		log.Warnf("catalog cache: dropping undecodable chunk count")
		c.Invalidate()
		return nil, false
	}

	exercises := make([]Exercise, 0, count)
	for i := range count {
		raw, err := c.cache.Get(chunkKey(i))
		if err != nil {
			// evicted on its own, reload everything
			return nil, false
		}
		var chunk []Exercise
		if err := json.Unmarshal(raw, &chunk); err != nil {
			log.Warnf("catalog cache: dropping undecodable chunk %d", i)
			c.Invalidate()
			return nil, false
		}
		exercises = append(exercises, chunk...)
	}
	return exercises, true
}

func (c *CachedRepo) store(exercises []Exercise) {
	chunks, err := c.chunks(exercises)
	if err != nil {
		log.Warnf("catalog cache, not caching: %s", err)
		return
	}

	expire := int(c.ttl.Seconds())
	for i, chunk := range chunks {
		if err := c.cache.Set(chunkKey(i), chunk, expire); err != nil {
			log.Errorf("catalog cache set chunk %d: %s", i, err)
			return
		}
	}
	if err := c.cache.Set([]byte(chunkCountKey), []byte(strconv.Itoa(len(chunks))), expire); err != nil {
		log.Errorf("catalog cache set chunk count: %s", err)
	}
}

// chunks packs the exercises, in order, into JSON arrays no larger than
// maxChunkBytes each.
func (c *CachedRepo) chunks(exercises []Exercise) ([][]byte, error) {
	var (
		chunks  [][]byte
		current = []byte{'['}
	)
	for _, e := range exercises {
		encoded, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("marshal exercise %d: %w", e.ID, err)
		}
		if len(encoded)+2 > c.maxChunkBytes {
			return nil, fmt.Errorf("exercise %d does not fit a cache entry (%d bytes)", e.ID, len(encoded))
		}
		if len(current) > 1 && len(current)+1+len(encoded)+1 > c.maxChunkBytes {
			chunks = append(chunks, append(current, ']'))
			current = []byte{'['}
		}
		if len(current) > 1 {
			current = append(current, ',')
		}
		current = append(current, encoded...)
	}
	if len(current) > 1 || len(chunks) == 0 {
		chunks = append(chunks, append(current, ']'))
	}
	return chunks, nil
}

func (c *CachedRepo) Get(ctx context.Context, id int) (*Exercise, error) {
	exercises, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	e, ok := Find(exercises, id)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	return &e, nil
}

func (c *CachedRepo) Invalidate() {
	c.cache.Del([]byte(chunkCountKey))
}
