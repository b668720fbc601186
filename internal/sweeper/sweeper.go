package sweeper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// artifactSuffixes are the generated-file patterns the sweeper owns.
// Anything else in the output directory is left alone.
var artifactSuffixes = []string{"_barcode.png", "_label.png", "_label.pdf"}

// Sweeper removes stale label artifacts from the output directory on a
// cron schedule.
type Sweeper struct {
	dir        string
	maxAge     time.Duration
	logger     *zap.Logger
	cronRunner *cron.Cron
}

func New(dir string, maxAge time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		dir:    dir,
		maxAge: maxAge,
		logger: logger,
		cronRunner: cron.New(
			cron.WithSeconds(),
			cron.WithChain(
				cron.SkipIfStillRunning(cron.DefaultLogger),
				cron.Recover(cron.DefaultLogger),
			),
		),
	}
}

// Start schedules the sweep. An empty spec disables the sweeper.
func (s *Sweeper) Start(spec string) error {
	if spec == "" {
		s.logger.Info("artifact sweeper disabled")
		return nil
	}
	if _, err := s.cronRunner.AddFunc(spec, func() { s.Sweep() }); err != nil {
		return fmt.Errorf("schedule sweep: %w", err)
	}
	s.cronRunner.Start()
	s.logger.Info("artifact sweeper started",
		zap.String("schedule", spec), zap.Duration("max_age", s.maxAge))
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish, up to 15s.
func (s *Sweeper) Stop() {
	ctx := s.cronRunner.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(15 * time.Second):
		s.logger.Warn("sweep still running at shutdown, abandoning wait")
	}
}

// Sweep removes artifact files older than maxAge and returns how many went.
func (s *Sweeper) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("read output dir failed",
			zap.String("dir", s.dir), zap.Error(err))
		return 0
	}

	cutoff := time.Now().Add(-s.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isArtifact(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			s.logger.Warn("remove artifact failed",
				zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("stale artifacts removed", zap.Int("count", removed))
	}
	return removed
}

func isArtifact(name string) bool {
	for _, suffix := range artifactSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
