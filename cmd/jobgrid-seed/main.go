// Command jobgrid-seed loads a YAML fixture file into the store so a
// fresh environment has postings to query. Records are validated
// through the domain constructors before anything is written.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/jobgrid/jobgrid/internal/config"
	dbRedis "github.com/jobgrid/jobgrid/internal/db/redis"
	domcat "github.com/jobgrid/jobgrid/internal/domain/category"
	domco "github.com/jobgrid/jobgrid/internal/domain/company"
	domjob "github.com/jobgrid/jobgrid/internal/domain/job"
	domtech "github.com/jobgrid/jobgrid/internal/domain/technology"
	logpkg "github.com/jobgrid/jobgrid/internal/logger"
	categoryrepo "github.com/jobgrid/jobgrid/internal/repository/category"
	companyrepo "github.com/jobgrid/jobgrid/internal/repository/company"
	jobrepo "github.com/jobgrid/jobgrid/internal/repository/job"
	technologyrepo "github.com/jobgrid/jobgrid/internal/repository/technology"
)

type fixture struct {
	Companies []struct {
		ID          string    `yaml:"id"`
		Name        string    `yaml:"name"`
		Description string    `yaml:"description"`
		Website     string    `yaml:"website"`
		SizeBucket  string    `yaml:"size_bucket"`
		Location    string    `yaml:"location"`
		Active      bool      `yaml:"active"`
		LogoURL     string    `yaml:"logo_url"`
		CreatedAt   time.Time `yaml:"created_at"`
	} `yaml:"companies"`
	Categories []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Slug    string `yaml:"slug"`
		IconURL string `yaml:"icon_url"`
	} `yaml:"categories"`
	Technologies []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		Slug    string `yaml:"slug"`
		LogoURL string `yaml:"logo_url"`
		Active  bool   `yaml:"active"`
	} `yaml:"technologies"`
	Jobs []struct {
		ID          string     `yaml:"id"`
		Title       string     `yaml:"title"`
		Description string     `yaml:"description"`
		Location    string     `yaml:"location"`
		Remote      bool       `yaml:"remote"`
		JobType     string     `yaml:"job_type"`
		Experience  string     `yaml:"experience"`
		Salary      float64    `yaml:"salary"`
		TechSlugs   []string   `yaml:"tech_slugs"`
		CategoryID  string     `yaml:"category_id"`
		CompanyID   string     `yaml:"company_id"`
		Status      string     `yaml:"status"`
		CreatedAt   time.Time  `yaml:"created_at"`
		PublishedAt *time.Time `yaml:"published_at"`
		Deadline    *time.Time `yaml:"deadline"`
	} `yaml:"jobs"`
}

func main() {
	var (
		fixturePath string
		reset       bool
	)
	flag.StringVar(&fixturePath, "fixture", "fixtures/seed.yaml", "path to the YAML fixture")
	flag.BoolVar(&reset, "reset", false, "delete existing records before loading")
	flag.Parse()

	env := config.GetEnv()
	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		logger.Fatal("Failed to read fixture", zap.String("path", fixturePath), zap.Error(err))
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		logger.Fatal("Failed to parse fixture", zap.Error(err))
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	if reset {
		deleted, err := wipe(ctx, store)
		if err != nil {
			logger.Fatal("Reset failed", zap.Error(err))
		}
		logger.Info("Existing records deleted", zap.Int("count", deleted))
	}

	replaced, err := seed(ctx, store, fx)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Fixture loaded",
		zap.Int("companies", len(fx.Companies)),
		zap.Int("categories", len(fx.Categories)),
		zap.Int("technologies", len(fx.Technologies)),
		zap.Int("jobs", len(fx.Jobs)),
		zap.Int("replaced", replaced),
	)
}

type seedStore interface {
	JSONSet(ctx context.Context, key, path string, doc []byte) error
	Exists(ctx context.Context, key string) (bool, error)
}

type wipeStore interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
}

// wipe deletes every seeded record so a reset run starts from an empty
// dataset instead of merging with stale keys.
func wipe(ctx context.Context, store wipeStore) (int, error) {
	patterns := []string{
		companyrepo.Key("*"),
		categoryrepo.Key("*"),
		technologyrepo.Key("*"),
		jobrepo.Key("*"),
	}
	deleted := 0
	for _, pattern := range patterns {
		keys, err := store.Scan(ctx, pattern)
		if err != nil {
			return deleted, fmt.Errorf("scan %s: %w", pattern, err)
		}
		for _, key := range keys {
			if err := store.Del(ctx, key); err != nil {
				return deleted, fmt.Errorf("del %s: %w", key, err)
			}
			deleted++
		}
	}
	return deleted, nil
}

// put writes one record, reporting whether it overwrote an existing key.
func put(ctx context.Context, store seedStore, key string, doc []byte) (bool, error) {
	existed, err := store.Exists(ctx, key)
	if err != nil {
		return false, err
	}
	if err := store.JSONSet(ctx, key, "$", doc); err != nil {
		return false, err
	}
	return existed, nil
}

func seed(ctx context.Context, store seedStore, fx fixture) (int, error) {
	replaced := 0
	for _, c := range fx.Companies {
		co, err := domco.New(c.ID, domco.Attrs{
			Name: c.Name, Description: c.Description, Website: c.Website,
			SizeBucket: c.SizeBucket, Location: c.Location, Active: c.Active,
			LogoURL: c.LogoURL, CreatedAt: c.CreatedAt,
		})
		if err != nil {
			return replaced, fmt.Errorf("company %s: %w", c.ID, err)
		}
		doc, err := companyrepo.EncodeCompany(co)
		if err != nil {
			return replaced, fmt.Errorf("company %s: %w", c.ID, err)
		}
		existed, err := put(ctx, store, companyrepo.Key(c.ID), doc)
		if err != nil {
			return replaced, fmt.Errorf("company %s: %w", c.ID, err)
		}
		if existed {
			replaced++
		}
	}

	for _, c := range fx.Categories {
		cat, err := domcat.New(c.ID, c.Name, c.Slug, c.IconURL)
		if err != nil {
			return replaced, fmt.Errorf("category %s: %w", c.ID, err)
		}
		doc, err := categoryrepo.EncodeCategory(cat)
		if err != nil {
			return replaced, fmt.Errorf("category %s: %w", c.ID, err)
		}
		existed, err := put(ctx, store, categoryrepo.Key(c.ID), doc)
		if err != nil {
			return replaced, fmt.Errorf("category %s: %w", c.ID, err)
		}
		if existed {
			replaced++
		}
	}

	for _, t := range fx.Technologies {
		tech, err := domtech.New(t.ID, t.Name, t.Slug, t.LogoURL, t.Active)
		if err != nil {
			return replaced, fmt.Errorf("technology %s: %w", t.ID, err)
		}
		doc, err := technologyrepo.EncodeTechnology(tech)
		if err != nil {
			return replaced, fmt.Errorf("technology %s: %w", t.ID, err)
		}
		existed, err := put(ctx, store, technologyrepo.Key(t.ID), doc)
		if err != nil {
			return replaced, fmt.Errorf("technology %s: %w", t.ID, err)
		}
		if existed {
			replaced++
		}
	}

	for _, j := range fx.Jobs {
		attrs := domjob.Attrs{
			Title: j.Title, Description: j.Description, Location: j.Location,
			Remote: j.Remote, JobType: domjob.Type(j.JobType),
			Experience: domjob.Experience(j.Experience), Salary: j.Salary,
			TechSlugs: j.TechSlugs, CategoryID: j.CategoryID, CompanyID: j.CompanyID,
			Status: domjob.Status(j.Status), CreatedAt: j.CreatedAt,
		}
		if j.PublishedAt != nil {
			attrs.PublishedAt = *j.PublishedAt
		}
		if j.Deadline != nil {
			attrs.Deadline = *j.Deadline
		}
		posting, err := domjob.New(j.ID, attrs)
		if err != nil {
			return replaced, fmt.Errorf("job %s: %w", j.ID, err)
		}
		doc, err := jobrepo.EncodePosting(posting)
		if err != nil {
			return replaced, fmt.Errorf("job %s: %w", j.ID, err)
		}
		existed, err := put(ctx, store, jobrepo.Key(j.ID), doc)
		if err != nil {
			return replaced, fmt.Errorf("job %s: %w", j.ID, err)
		}
		if existed {
			replaced++
		}
	}

	return replaced, nil
}
