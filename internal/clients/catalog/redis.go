package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
	redisclient "github.com/greyvale/sheet-api/internal/redis"
)

const (
	itemKeyPrefix   = "catalog:item:"
	recipeKeyPrefix = "catalog:recipe:"
	itemIndexKey    = "catalog:items"
	recipeIndexKey  = "catalog:recipes"
)

// Redis is a Redis-backed catalog. Reads implement Client; the Put
// methods exist for the seed tooling and are not part of the read
// interface the rest of the system sees.
type Redis struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog client.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed catalog client
func NewRedis(cfg *RedisConfig) (*Redis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Redis{client: cfg.Client}, nil
}

// Ensure Redis implements the Client interface
var _ Client = (*Redis)(nil)

// GetItem fetches one item definition by id
func (c *Redis) GetItem(ctx context.Context, itemID string) (*sheet.ItemDefinition, error) {
	if itemID == "" {
		return nil, errors.InvalidArgument("item ID cannot be empty")
	}

	result, err := c.client.Get(ctx, itemKeyPrefix+itemID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s not in catalog", itemID).
				WithMeta("item_id", itemID)
		}
		return nil, errors.Wrapf(err, "failed to get catalog item %s", itemID)
	}

	var item sheet.ItemDefinition
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal catalog item %s", itemID)
	}
	return &item, nil
}

// ListItems returns every item definition, ordered by id
func (c *Redis) ListItems(ctx context.Context) ([]*sheet.ItemDefinition, error) {
	ids, err := c.client.SMembers(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catalog items")
	}
	sort.Strings(ids)

	items := make([]*sheet.ItemDefinition, 0, len(ids))
	for _, id := range ids {
		item, err := c.GetItem(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "catalog index entry without item",
					"item_id", id)
				continue
			}
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ListRecipes returns every recipe definition, ordered by id
func (c *Redis) ListRecipes(ctx context.Context) ([]*sheet.RecipeDefinition, error) {
	ids, err := c.client.SMembers(ctx, recipeIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list catalog recipes")
	}
	sort.Strings(ids)

	recipes := make([]*sheet.RecipeDefinition, 0, len(ids))
	for _, id := range ids {
		result, err := c.client.Get(ctx, recipeKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				slog.WarnContext(ctx, "catalog index entry without recipe",
					"recipe_id", id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get catalog recipe %s", id)
		}

		var recipe sheet.RecipeDefinition
		if err := json.Unmarshal([]byte(result), &recipe); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal catalog recipe %s", id)
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, nil
}

// PutItem stores an item definition and indexes it. Used by seeding.
func (c *Redis) PutItem(ctx context.Context, item *sheet.ItemDefinition) error {
	if item == nil || item.ID == "" {
		return errors.InvalidArgument("item with ID is required")
	}

	data, err := json.Marshal(item)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal item %s", item.ID)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, itemKeyPrefix+item.ID, data, 0)
	pipe.SAdd(ctx, itemIndexKey, item.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store item %s", item.ID)
	}
	return nil
}

// PutRecipe stores a recipe definition and indexes it. Used by seeding.
func (c *Redis) PutRecipe(ctx context.Context, recipe *sheet.RecipeDefinition) error {
	if recipe == nil || recipe.ID == "" {
		return errors.InvalidArgument("recipe with ID is required")
	}

	data, err := json.Marshal(recipe)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal recipe %s", recipe.ID)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, recipeKeyPrefix+recipe.ID, data, 0)
	pipe.SAdd(ctx, recipeIndexKey, recipe.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store recipe %s", recipe.ID)
	}
	return nil
}
