package throwback

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ComputeGroups returns one group per selected offset that has at least one
// matching post. Groups follow the fixed catalog order, not the order the keys
// were selected in. An inactive or empty settings record yields no groups.
//
// The store is queried once per selected offset. A store error aborts the
// computation and is returned wrapped in ErrContentStore.
func ComputeGroups(ctx context.Context, settings *Settings, today time.Time, store ContentStore) ([]Group, error) {
	if settings == nil || !settings.Activate || len(settings.Dates) == 0 {
		return nil, nil
	}

	if store == nil {
		return nil, ErrNilStore
	}

	offsets := ResolveOffsets(today)

	selected := make(map[string]struct{}, len(settings.Dates))
	for _, key := range settings.Dates {
		if _, ok := LookupOffset(offsets, key); !ok {
			log.Warn().Str("offset", key).Msg("skipping unknown throwback offset")
			continue
		}

		selected[key] = struct{}{}
	}

	limit := settings.MaxPosts
	if limit < MinMaxPosts || limit > MaxMaxPosts {
		normalized := *settings
		normalized.Normalize()
		limit = normalized.MaxPosts
	}

	groups := make([]Group, 0, len(selected))

	for _, offset := range offsets {
		if _, ok := selected[offset.Key]; !ok {
			continue
		}

		y, m, d := offset.Date.Date()

		posts, err := store.Query(ctx, Criteria{
			Year:            y,
			Month:           m,
			Day:             d,
			Location:        offset.Date.Location(),
			CategoryIDs:     settings.CategoryIDs,
			ExcludeIDs:      settings.ExcludedPostIDs,
			Limit:           limit,
			OrderBy:         orderByDate,
			Order:           orderDesc,
			PostType:        PostTypePost,
			Status:          StatusPublish,
			SuppressFilters: true,
		})

		storeQueries.WithLabelValues(offset.Key).Inc()

		if err != nil {
			return nil, fmt.Errorf("%w: offset %q: %w", ErrContentStore, offset.Key, err)
		}

		if len(posts) == 0 {
			continue
		}

		groupsFound.WithLabelValues(offset.Key).Inc()

		groups = append(groups, Group{
			Key:   offset.Key,
			Label: offset.Label,
			Posts: posts,
		})
	}

	return groups, nil
}
