package sheet

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	entities "github.com/greyvale/sheet-api/internal/entities/sheet"
	"github.com/greyvale/sheet-api/internal/errors"
	"github.com/greyvale/sheet-api/internal/pkg/clock"
	redisclient "github.com/greyvale/sheet-api/internal/redis"
)

const (
	sheetKeyPrefix    = "sheet:"
	playerIndexPrefix = "sheet:player:"

	// Error messages
	errSheetNil      = "sheet cannot be nil"
	errSheetIDEmpty  = "sheet ID cannot be empty"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis sheet repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}
	if input.Sheet.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}
	if input.Sheet.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := sheetKeyPrefix + input.Sheet.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("sheet with ID %s already exists", input.Sheet.ID)
	}

	now := r.clock.Now().Unix()
	input.Sheet.CreatedAt = now
	input.Sheet.UpdatedAt = now

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // Sheets have no TTL
	pipe.SAdd(ctx, playerIndexPrefix+input.Sheet.PlayerID, input.Sheet.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create sheet")
	}

	return &CreateOutput{Sheet: input.Sheet}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	key := sheetKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	var data entities.SheetData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheet")
	}

	return &GetOutput{Sheet: &data}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}
	if input.Sheet.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Sheet.ID})
	if err != nil {
		return nil, err
	}

	input.Sheet.CreatedAt = existing.Sheet.CreatedAt
	input.Sheet.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sheetKeyPrefix+input.Sheet.ID, data, 0)

	// Reindex if the sheet changed hands
	if existing.Sheet.PlayerID != input.Sheet.PlayerID {
		if existing.Sheet.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.Sheet.PlayerID, input.Sheet.ID)
		}
		if input.Sheet.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Sheet.PlayerID, input.Sheet.ID)
		}
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update sheet")
	}

	return &UpdateOutput{Sheet: input.Sheet}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sheetKeyPrefix+input.ID)
	if getOutput.Sheet.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+getOutput.Sheet.PlayerID, input.ID)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	indexKey := playerIndexPrefix + input.PlayerID
	sheetIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get sheets from index %s", indexKey)
	}

	slog.DebugContext(ctx, "listing sheets by player",
		"player_id", input.PlayerID,
		"count", len(sheetIDs))

	sheets := make([]*entities.SheetData, 0, len(sheetIDs))
	for _, id := range sheetIDs {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A dangling index entry is repaired in place
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "sheet not found, cleaning up index",
					"sheet_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get sheet %s", id)
		}
		sheets = append(sheets, getOutput.Sheet)
	}

	return &ListByPlayerIDOutput{Sheets: sheets}, nil
}
