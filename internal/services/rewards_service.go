package services

import (
	"context"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sajee05/effortless-time-tracker/internal/domain"
	"github.com/sajee05/effortless-time-tracker/internal/errors"
	"github.com/sajee05/effortless-time-tracker/internal/logging"
	"github.com/sajee05/effortless-time-tracker/internal/validation"
)

// rewardsFile is the on-disk shape of the user's rewards list.
type rewardsFile struct {
	Rewards []rewardEntry `yaml:"rewards"`
}

type rewardEntry struct {
	Coins       int    `yaml:"coins"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
}

// rewardsServiceImpl implements the RewardsService interface
type rewardsServiceImpl struct {
	aggregation     AggregationService
	rewardValidator *validation.RewardValidator
	logger          logging.Logger
	path            string
}

// NewRewardsService creates a new RewardsService instance. The path names
// the user's rewards YAML file; a missing file means no thresholds.
func NewRewardsService(aggregation AggregationService, path string, logger logging.Logger) RewardsService {
	return &rewardsServiceImpl{
		aggregation:     aggregation,
		rewardValidator: validation.NewRewardValidator(),
		logger:          logger,
		path:            path,
	}
}

// Coins converts lifetime studied time into coins, one per full hour.
func (r *rewardsServiceImpl) Coins(ctx context.Context) (int, error) {
	lifetime, err := r.aggregation.LifetimeTotal(ctx)
	if err != nil {
		return 0, err
	}
	return int(lifetime / time.Hour), nil
}

// Thresholds loads and validates the rewards file. Entries without an
// explicit kind are coin thresholds.
func (r *rewardsServiceImpl) Thresholds() ([]domain.RewardThreshold, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debugf("no rewards file at %s", r.path)
			return nil, nil
		}
		return nil, errors.NewInternalError("failed to read rewards file", err)
	}

	var file rewardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewMalformedDataError("rewards file is not valid YAML", err)
	}

	thresholds := make([]domain.RewardThreshold, 0, len(file.Rewards))
	for _, entry := range file.Rewards {
		kind := domain.RewardKind(entry.Kind)
		if entry.Kind == "" {
			kind = domain.RewardKindCoin
		}
		thresholds = append(thresholds, domain.RewardThreshold{
			CoinCost:    entry.Coins,
			Description: entry.Description,
			Kind:        kind,
		})
	}

	if err := r.rewardValidator.ValidateThresholds(thresholds); err != nil {
		return nil, errors.NewValidationError("invalid rewards file", err)
	}

	return thresholds, nil
}

// Progress scores every threshold against the current coin balance or
// streak length.
func (r *rewardsServiceImpl) Progress(ctx context.Context) ([]RewardProgress, error) {
	thresholds, err := r.Thresholds()
	if err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, nil
	}

	coins, err := r.Coins(ctx)
	if err != nil {
		return nil, err
	}

	streak, err := r.aggregation.Streak(ctx)
	if err != nil {
		return nil, err
	}

	progress := make([]RewardProgress, 0, len(thresholds))
	for _, threshold := range thresholds {
		have, want := coins, threshold.CoinCost
		if threshold.Kind == domain.RewardKindStreak {
			have, want = streak.Current, domain.StreakRewardTargetDays
		}
		progress = append(progress, scoreThreshold(threshold, have, want))
	}

	return progress, nil
}

func scoreThreshold(threshold domain.RewardThreshold, have, want int) RewardProgress {
	ratio := float64(have) / float64(want)
	if ratio > 1 {
		ratio = 1
	}
	remaining := want - have
	if remaining < 0 {
		remaining = 0
	}
	return RewardProgress{
		Threshold: threshold,
		Progress:  ratio,
		Achieved:  have >= want,
		Remaining: remaining,
	}
}
