package services

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sourdough-tracker/internal/config"
	"sourdough-tracker/internal/domain"
	"sourdough-tracker/internal/errors"
	"sourdough-tracker/internal/repository/configfile"
	"sourdough-tracker/internal/repository/tracker"
	"sourdough-tracker/internal/validation"
)

// Option customises a StarterService
type Option func(*starterServiceImpl)

// WithClock replaces the wall clock used to date feedings
func WithClock(now func() time.Time) Option {
	return func(s *starterServiceImpl) {
		s.now = now
	}
}

// starterServiceImpl implements the StarterService interface
type starterServiceImpl struct {
	configRepo configfile.Repository
	tracker    *tracker.Tracker
	settings   *config.Config
	validator  *validation.StarterValidator
	logger     *slog.Logger
	now        func() time.Time
}

// NewStarterService creates a new StarterService instance
func NewStarterService(configRepo configfile.Repository, store tracker.Store, settings *config.Config, logger *slog.Logger, opts ...Option) StarterService {
	s := &starterServiceImpl{
		configRepo: configRepo,
		tracker:    tracker.New(store, logger),
		settings:   settings,
		validator:  validation.NewStarterValidator(),
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init validates the setup values, saves the config and creates the feeding log
func (s *starterServiceImpl) Init(ctx context.Context, req InitRequest) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ratio, err := s.validator.ValidateInit(validation.InitOptions{
		JarWeight:  req.JarWeight,
		KeepTarget: req.KeepTarget,
		Ratio:      req.Ratio,
	})
	if err != nil {
		s.logger.Info("rejected init input", "error", err)
		return nil, err
	}

	configPath := s.settings.ConfigPath()
	logPath := s.settings.LogPath()
	for _, dir := range []string{filepath.Dir(configPath), filepath.Dir(logPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			s.logger.Error("could not create data directory", "dir", dir, "error", err)
			if stderrors.Is(err, fs.ErrPermission) {
				return nil, errors.NewPermissionError("create", dir, err)
			}
			return nil, errors.NewStorageError("create", dir, err)
		}
	}

	cfg := domain.NewConfig(req.JarWeight, req.KeepTarget, ratio, s.settings.Paths.Dir)
	if err := s.configRepo.Save(configPath, cfg); err != nil {
		s.logger.Error("could not save config", "path", configPath, "error", err)
		return nil, err
	}
	s.logger.Info("saved config", "path", configPath,
		"jar_weight", cfg.JarWeight, "keep_target", cfg.KeepTarget, "ratio", cfg.Ratio.String())

	created, err := s.tracker.CreateLogFile(logPath)
	if err != nil {
		return nil, err
	}

	return &InitResult{
		Config:     cfg,
		ConfigPath: configPath,
		LogPath:    logPath,
		LogCreated: created,
	}, nil
}

// Feed computes the discard target and refresh amounts for a weighed jar and logs the feeding
func (s *starterServiceImpl) Feed(ctx context.Context, req FeedRequest) (*FeedResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.ValidateFeed(validation.FeedOptions{
		Weight:    req.Weight,
		PeakHours: req.PeakHours,
	}); err != nil {
		s.logger.Info("rejected feed input", "error", err)
		return nil, err
	}

	configPath := s.settings.ConfigPath()
	cfg, err := s.configRepo.Load(configPath)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			s.logger.Warn("feed before init", "path", configPath)
		} else {
			s.logger.Error("could not load config", "path", configPath, "error", err)
		}
		return nil, err
	}

	feeding := domain.NewFeeding(req.Weight, cfg, domain.Observations{
		Smell:     req.Smell,
		PeakHours: req.PeakHours,
		Notes:     req.Notes,
	}, s.now())

	target, err := feeding.TargetTotalWeight()
	if err != nil {
		s.logger.Error("config breaks feeding invariant", "path", configPath, "error", err)
		return nil, err
	}
	flour, water := feeding.FlourAndWater()

	negative := feeding.StarterWeight < 0
	if negative {
		s.logger.Warn("jar weighs less than the empty jar", "jar_weight_total", req.Weight,
			"jar_weight", cfg.JarWeight, "starter_weight", feeding.StarterWeight)
	}

	result := &FeedResult{
		Feeding:         feeding,
		TargetWeight:    target,
		Flour:           flour,
		Water:           water,
		NegativeStarter: negative,
		LogPath:         s.settings.LogPath(),
	}

	result.Append, err = s.tracker.AppendFeeding(feeding, result.LogPath)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Stats reads the newest feedings from the log
func (s *starterServiceImpl) Stats(ctx context.Context, limit int) (*StatsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logPath := s.settings.LogPath()
	header, rows, err := s.tracker.RecentFeedings(logPath, limit)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		LogPath: logPath,
		Header:  header,
		Rows:    rows,
	}, nil
}
